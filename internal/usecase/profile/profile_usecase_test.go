package profile

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spotlight-dating/spotlight-backend/internal/domain"
	"github.com/spotlight-dating/spotlight-backend/internal/infrastructure/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }

type fakeProfileRepo struct {
	profiles map[int]*domain.Profile
	nextID   int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[int]*domain.Profile{}, nextID: 1}
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	p.ID = f.nextID
	f.nextID++
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id int) (*domain.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) ListByUser(ctx context.Context, userID int) ([]*domain.Profile, error) {
	var out []*domain.Profile
	for _, p := range f.profiles {
		if p.OwnedBy(userID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, p *domain.Profile) error {
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeProfileRepo) Delete(ctx context.Context, id int) error {
	delete(f.profiles, id)
	return nil
}

func (f *fakeProfileRepo) CandidateIDs(ctx context.Context, excludeIDs []int, excludeOwner *int) ([]int, error) {
	return nil, nil
}

func (f *fakeProfileRepo) CountCandidates(ctx context.Context, excludeIDs []int, excludeOwner *int) (int, error) {
	return 0, nil
}

type fakeImageRepo struct {
	images map[int]*domain.ProfileImage
	nextID int
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{images: map[int]*domain.ProfileImage{}, nextID: 1}
}

func (f *fakeImageRepo) Create(ctx context.Context, img *domain.ProfileImage) error {
	img.ID = f.nextID
	f.nextID++
	f.images[img.ID] = img
	return nil
}

func (f *fakeImageRepo) GetByID(ctx context.Context, id int) (*domain.ProfileImage, error) {
	img, ok := f.images[id]
	if !ok {
		return nil, domain.ErrImageNotFound
	}
	return img, nil
}

func (f *fakeImageRepo) ListByProfile(ctx context.Context, profileID int) ([]*domain.ProfileImage, error) {
	var out []*domain.ProfileImage
	for _, img := range f.images {
		if img.ProfileID == profileID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (f *fakeImageRepo) Delete(ctx context.Context, id int) error {
	delete(f.images, id)
	return nil
}

func newTestUseCase(t *testing.T) (*ProfileUseCase, *fakeProfileRepo, *fakeImageRepo, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewImageStore(dir)
	require.NoError(t, err)
	profiles := newFakeProfileRepo()
	images := newFakeImageRepo()
	return NewProfileUseCase(profiles, images, store), profiles, images, dir
}

// pngUpload produces a valid in-memory image upload.
func pngUpload(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return &buf
}

func TestCreateProfile(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)

	resp, err := uc.Create(context.Background(), 1, &CreateProfileRequest{
		Name:           "Alex",
		Age:            27,
		Description:    strPtr("hello"),
		Height:         intPtr(180),
		IncomeBracket:  strPtr("50k-75k"),
		GenderIdentity: strPtr("male"),
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Alex", resp.Name)
	assert.True(t, resp.Active, "profiles default to active")
	require.NotNil(t, resp.UserID)
	assert.Equal(t, 1, *resp.UserID)
	assert.Empty(t, resp.Images)
}

func TestCreateProfileValidation(t *testing.T) {
	uc, repo, _, _ := newTestUseCase(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		req   *CreateProfileRequest
		field string
	}{
		{"blank name", &CreateProfileRequest{Name: "  ", Age: 25}, "name"},
		{"too young", &CreateProfileRequest{Name: "A", Age: 17}, "age"},
		{"too old", &CreateProfileRequest{Name: "A", Age: 100}, "age"},
		{"description too long", &CreateProfileRequest{Name: "A", Age: 25, Description: strPtr(strings.Repeat("x", 501))}, "description"},
		{"height too small", &CreateProfileRequest{Name: "A", Age: 25, Height: intPtr(0)}, "height"},
		{"height too large", &CreateProfileRequest{Name: "A", Age: 25, Height: intPtr(300)}, "height"},
		{"unknown income bracket", &CreateProfileRequest{Name: "A", Age: 25, IncomeBracket: strPtr("billions")}, "income_bracket"},
		{"unknown gender identity", &CreateProfileRequest{Name: "A", Age: 25, GenderIdentity: strPtr("robot")}, "gender_identity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(ctx, 1, tt.req)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
	assert.Empty(t, repo.profiles, "invalid profiles must not be persisted")
}

func TestGetOtherUsersProfileIsNotFound(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)
	ctx := context.Background()

	resp, err := uc.Create(ctx, 1, &CreateProfileRequest{Name: "Alex", Age: 27})
	require.NoError(t, err)

	// Owner sees it, everyone else gets not-found rather than forbidden.
	_, err = uc.Get(ctx, 1, resp.ID)
	require.NoError(t, err)

	_, err = uc.Get(ctx, 2, resp.ID)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestUpdateProfilePartial(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, 1, &CreateProfileRequest{
		Name:   "Alex",
		Age:    27,
		Height: intPtr(180),
	})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, 1, created.ID, &UpdateProfileRequest{
		Age:    intPtr(28),
		Active: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alex", updated.Name, "untouched fields keep their values")
	assert.Equal(t, 28, updated.Age)
	assert.False(t, updated.Active)
	require.NotNil(t, updated.Height)
	assert.Equal(t, 180, *updated.Height)
}

func TestUpdateProfileRevalidates(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, 1, &CreateProfileRequest{Name: "Alex", Age: 27})
	require.NoError(t, err)

	_, err = uc.Update(ctx, 1, created.ID, &UpdateProfileRequest{Age: intPtr(12)})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "age", verr.Field)

	_, err = uc.Update(ctx, 2, created.ID, &UpdateProfileRequest{Age: intPtr(30)})
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestList(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, 1, &CreateProfileRequest{Name: "Alex", Age: 27})
	require.NoError(t, err)
	_, err = uc.Create(ctx, 1, &CreateProfileRequest{Name: "Jordan", Age: 30})
	require.NoError(t, err)
	_, err = uc.Create(ctx, 2, &CreateProfileRequest{Name: "Sam", Age: 25})
	require.NoError(t, err)

	mine, err := uc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestAddAndRemoveImage(t *testing.T) {
	uc, _, _, dir := newTestUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, 1, &CreateProfileRequest{Name: "Alex", Age: 27})
	require.NoError(t, err)

	img, err := uc.AddImage(ctx, 1, created.ID, pngUpload(t))
	require.NoError(t, err)
	assert.Equal(t, created.ID, img.ProfileID)
	assert.Equal(t, "image/jpeg", img.ContentType)
	assert.FileExists(t, filepath.Join(dir, img.Filename))

	resp, err := uc.Get(ctx, 1, created.ID)
	require.NoError(t, err)
	require.Len(t, resp.Images, 1)

	require.NoError(t, uc.RemoveImage(ctx, 1, created.ID, img.ID))
	assert.NoFileExists(t, filepath.Join(dir, img.Filename))
}

func TestAddImageRejectsGarbage(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, 1, &CreateProfileRequest{Name: "Alex", Age: 27})
	require.NoError(t, err)

	_, err = uc.AddImage(ctx, 1, created.ID, strings.NewReader("not an image"))
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "image", verr.Field)
}

func TestRemoveImageFromWrongProfile(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)
	ctx := context.Background()

	first, err := uc.Create(ctx, 1, &CreateProfileRequest{Name: "Alex", Age: 27})
	require.NoError(t, err)
	second, err := uc.Create(ctx, 1, &CreateProfileRequest{Name: "Jordan", Age: 30})
	require.NoError(t, err)

	img, err := uc.AddImage(ctx, 1, first.ID, pngUpload(t))
	require.NoError(t, err)

	// The image belongs to the first profile, not the second.
	err = uc.RemoveImage(ctx, 1, second.ID, img.ID)
	assert.ErrorIs(t, err, domain.ErrImageNotFound)
}

func TestDeleteProfileCleansUpFiles(t *testing.T) {
	uc, repo, _, dir := newTestUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, 1, &CreateProfileRequest{Name: "Alex", Age: 27})
	require.NoError(t, err)

	img, err := uc.AddImage(ctx, 1, created.ID, pngUpload(t))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, 1, created.ID))
	assert.Empty(t, repo.profiles)
	assert.NoFileExists(t, filepath.Join(dir, img.Filename))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

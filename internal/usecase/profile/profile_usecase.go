package profile

import (
	"context"
	"fmt"
	"io"

	"github.com/spotlight-dating/spotlight-backend/internal/domain"
	"github.com/spotlight-dating/spotlight-backend/internal/infrastructure/storage"
	"github.com/spotlight-dating/spotlight-backend/internal/repository"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	imageRepo   repository.ImageRepository
	imageStore  *storage.ImageStore
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	imageRepo repository.ImageRepository,
	imageStore *storage.ImageStore,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		imageRepo:   imageRepo,
		imageStore:  imageStore,
	}
}

// CreateProfileRequest represents profile creation input
type CreateProfileRequest struct {
	Name           string  `json:"name" binding:"required"`
	Age            int     `json:"age" binding:"required"`
	Description    *string `json:"description"`
	Height         *int    `json:"height"`
	IncomeBracket  *string `json:"income_bracket"`
	GenderIdentity *string `json:"gender_identity"`
	Active         *bool   `json:"active"`
}

// UpdateProfileRequest represents profile update input; nil fields are
// left untouched.
type UpdateProfileRequest struct {
	Name           *string `json:"name"`
	Age            *int    `json:"age"`
	Description    *string `json:"description"`
	Height         *int    `json:"height"`
	IncomeBracket  *string `json:"income_bracket"`
	GenderIdentity *string `json:"gender_identity"`
	Active         *bool   `json:"active"`
}

// ProfileResponse is a profile with its attached images.
type ProfileResponse struct {
	*domain.Profile
	Images []*domain.ProfileImage `json:"images"`
}

func (uc *ProfileUseCase) withImages(ctx context.Context, p *domain.Profile) (*ProfileResponse, error) {
	images, err := uc.imageRepo.ListByProfile(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	if images == nil {
		images = []*domain.ProfileImage{}
	}
	return &ProfileResponse{Profile: p, Images: images}, nil
}

// List returns all profiles owned by the user.
func (uc *ProfileUseCase) List(ctx context.Context, userID int) ([]*ProfileResponse, error) {
	profiles, err := uc.profileRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	responses := make([]*ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		resp, err := uc.withImages(ctx, p)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// Get returns one of the user's own profiles. Other users' profiles are
// reported as not found, never as forbidden.
func (uc *ProfileUseCase) Get(ctx context.Context, userID, profileID int) (*ProfileResponse, error) {
	p, err := uc.ownedProfile(ctx, userID, profileID)
	if err != nil {
		return nil, err
	}
	return uc.withImages(ctx, p)
}

// Create builds and persists a new profile owned by the user.
func (uc *ProfileUseCase) Create(ctx context.Context, userID int, req *CreateProfileRequest) (*ProfileResponse, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	p := &domain.Profile{
		UserID:         &userID,
		Name:           req.Name,
		Age:            req.Age,
		Description:    req.Description,
		Height:         req.Height,
		IncomeBracket:  req.IncomeBracket,
		GenderIdentity: req.GenderIdentity,
		Active:         active,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := uc.profileRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &ProfileResponse{Profile: p, Images: []*domain.ProfileImage{}}, nil
}

// Update applies the non-nil fields and revalidates.
func (uc *ProfileUseCase) Update(ctx context.Context, userID, profileID int, req *UpdateProfileRequest) (*ProfileResponse, error) {
	p, err := uc.ownedProfile(ctx, userID, profileID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Age != nil {
		p.Age = *req.Age
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.Height != nil {
		p.Height = req.Height
	}
	if req.IncomeBracket != nil {
		p.IncomeBracket = req.IncomeBracket
	}
	if req.GenderIdentity != nil {
		p.GenderIdentity = req.GenderIdentity
	}
	if req.Active != nil {
		p.Active = *req.Active
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := uc.profileRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return uc.withImages(ctx, p)
}

// Delete removes the profile; interaction records and images cascade in
// the database, stored files are cleaned up here.
func (uc *ProfileUseCase) Delete(ctx context.Context, userID, profileID int) error {
	p, err := uc.ownedProfile(ctx, userID, profileID)
	if err != nil {
		return err
	}

	images, err := uc.imageRepo.ListByProfile(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("failed to list images: %w", err)
	}

	if err := uc.profileRepo.Delete(ctx, p.ID); err != nil {
		return err
	}

	for _, img := range images {
		_ = uc.imageStore.Remove(img.Filename)
	}
	return nil
}

// AddImage normalizes and attaches an uploaded image to an owned profile.
func (uc *ProfileUseCase) AddImage(ctx context.Context, userID, profileID int, upload io.Reader) (*domain.ProfileImage, error) {
	p, err := uc.ownedProfile(ctx, userID, profileID)
	if err != nil {
		return nil, err
	}

	filename, err := uc.imageStore.Save(upload)
	if err != nil {
		return nil, domain.NewValidationError("image", "could not be processed")
	}

	image := &domain.ProfileImage{
		ProfileID:   p.ID,
		Filename:    filename,
		ContentType: "image/jpeg",
	}
	if err := uc.imageRepo.Create(ctx, image); err != nil {
		_ = uc.imageStore.Remove(filename)
		return nil, fmt.Errorf("failed to save image: %w", err)
	}
	return image, nil
}

// RemoveImage detaches and deletes an image from an owned profile.
func (uc *ProfileUseCase) RemoveImage(ctx context.Context, userID, profileID, imageID int) error {
	p, err := uc.ownedProfile(ctx, userID, profileID)
	if err != nil {
		return err
	}

	image, err := uc.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return err
	}
	if image.ProfileID != p.ID {
		return domain.ErrImageNotFound
	}

	if err := uc.imageRepo.Delete(ctx, image.ID); err != nil {
		return err
	}
	return uc.imageStore.Remove(image.Filename)
}

func (uc *ProfileUseCase) ownedProfile(ctx context.Context, userID, profileID int) (*domain.Profile, error) {
	p, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !p.OwnedBy(userID) {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

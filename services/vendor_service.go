package services

import (
	"errors"

	"github.com/jculp24/thrsty/entity"
	"github.com/jculp24/thrsty/repository"

	"gorm.io/gorm"
)

type VendorService struct {
	Repo *repository.VendorRepository
}

func NewVendorService(repo *repository.VendorRepository) *VendorService {
	return &VendorService{Repo: repo}
}

func (s *VendorService) List() ([]entity.Vendor, error) {
	return s.Repo.List()
}

func (s *VendorService) Get(id uint) (*entity.Vendor, error) {
	v, err := s.Repo.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return v, err
}

type VendorMenu struct {
	Vendor *entity.Vendor `json:"vendor"`
	Menu   []entity.Drink `json:"menu"`
}

func (s *VendorService) Menu(id uint) (*VendorMenu, error) {
	v, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	drinks, err := s.Repo.Menu(id)
	if err != nil {
		return nil, err
	}
	return &VendorMenu{Vendor: v, Menu: drinks}, nil
}

type VendorIn struct {
	Name        string  `json:"name" binding:"required"`
	Location    string  `json:"location"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	IsFeatured  bool    `json:"isFeatured"`
}

func (s *VendorService) Create(in *VendorIn) (*entity.Vendor, error) {
	v := &entity.Vendor{
		Name:        in.Name,
		Location:    in.Location,
		Category:    in.Category,
		Description: in.Description,
		Rating:      in.Rating,
		IsFeatured:  in.IsFeatured,
	}
	if err := s.Repo.Create(v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *VendorService) Update(actorID, id uint, in *VendorIn) (*entity.Vendor, error) {
	ok, err := s.Repo.IsAdmin(id, actorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	affected, err := s.Repo.Update(id, map[string]any{
		"name":        in.Name,
		"location":    in.Location,
		"category":    in.Category,
		"description": in.Description,
		"rating":      in.Rating,
		"is_featured": in.IsFeatured,
	})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(id)
}

func (s *VendorService) Delete(actorID, id uint) error {
	ok, err := s.Repo.IsAdmin(id, actorID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return s.Repo.Delete(id)
}

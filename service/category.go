package service

import (
	"context"
	"regexp"
	"storefront/dao"
	"storefront/models"
	"storefront/types"
	"strings"
)

var _ ICategoryService = (*CategoryService)(nil)

type ICategoryService interface {
	List(ctx context.Context) ([]*models.Category, error)
	Create(ctx context.Context, req *types.CategoryRequest) (*models.Category, error)
	Update(ctx context.Context, id string, req *types.CategoryRequest) error
	Delete(ctx context.Context, id string) error
}

type CategoryService struct {
	CategoryDao *dao.Category
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	return s.CategoryDao.FindAll(ctx, "sort_order asc, name asc")
}

func (s *CategoryService) Create(ctx context.Context, req *types.CategoryRequest) (*models.Category, error) {
	id := strings.ToLower(strings.TrimSpace(req.ID))
	if !slugPattern.MatchString(id) {
		return nil, invalid("category id must be a slug like \"research-peptides\"")
	}
	c := &models.Category{
		ID:        id,
		Name:      strings.TrimSpace(req.Name),
		Icon:      req.Icon,
		SortOrder: req.SortOrder,
		Active:    req.Active == nil || *req.Active,
	}
	if err := s.CategoryDao.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, req *types.CategoryRequest) error {
	data := map[string]any{
		"name":       strings.TrimSpace(req.Name),
		"icon":       req.Icon,
		"sort_order": req.SortOrder,
	}
	if req.Active != nil {
		data["active"] = *req.Active
	}
	return s.CategoryDao.UpdateById(ctx, id, data)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.CategoryDao.Delete(ctx, id)
}

package services

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"message-system/models"
	"message-system/utils"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// UserService 用户服务
type UserService struct {
	db       *gorm.DB
	validate *validator.Validate
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db, validate: validator.New()}
}

// Create registers a new user. Email must be well formed and not already
// registered.
func (s *UserService) Create(email, name string) (*models.User, error) {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, &ValidationError{Reason: "invalid email address"}
	}

	// 检查邮箱是否已注册
	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, &ConflictError{Reason: "email already registered"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := models.User{
		ID:    uuid.New().String(),
		Email: email,
		Name:  name,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Get fetches one user by id.
func (s *UserService) Get(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "user", ID: id}
		}
		return nil, err
	}
	return &user, nil
}

// List returns one page of users ordered by (created_at, id) ascending,
// so repeated calls walk the directory deterministically. The returned
// token is empty on the last page.
func (s *UserService) List(pageToken string, pageSize int) ([]models.User, string, error) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	offset := 0
	if pageToken != "" {
		var err error
		offset, err = utils.DecodePageToken(pageToken)
		if err != nil {
			return nil, "", &ValidationError{Reason: "invalid page token"}
		}
	}

	// Fetch one extra row to learn whether another page exists.
	var users []models.User
	err := s.db.
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(pageSize + 1).
		Find(&users).Error
	if err != nil {
		return nil, "", err
	}

	nextToken := ""
	if len(users) > pageSize {
		users = users[:pageSize]
		nextToken = utils.EncodePageToken(offset + pageSize)
	}
	return users, nextToken, nil
}

package presenter

import (
	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
	"github.com/wichananm65/ecommerce-backend/internal/infrastructure/token"
)

// TokenIssuer mints the token pair embedded in authenticated responses.
type TokenIssuer interface {
	IssuePair(userID int64) (token.Pair, error)
}

// UserPresenter shapes domain entities for delivery layer responses.
type UserPresenter struct {
	tokens TokenIssuer
}

func NewUserPresenter(tokens TokenIssuer) *UserPresenter {
	return &UserPresenter{tokens: tokens}
}

type UserResponse struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"isAdmin"`
}

// UserWithTokenResponse adds a freshly issued access token.
type UserWithTokenResponse struct {
	UserResponse
	Token string `json:"token"`
}

// LoginResponse is the token pair followed by the user fields.
type LoginResponse struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
	UserWithTokenResponse
}

func (p *UserPresenter) ToResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:       user.ID,
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Name:     user.DisplayName(),
		IsAdmin:  user.IsStaff,
	}
}

func (p *UserPresenter) ToList(users []*entity.User) []*UserResponse {
	result := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, p.ToResponse(user))
	}
	return result
}

// ToResponseWithToken issues a new pair on every call; nothing is cached.
func (p *UserPresenter) ToResponseWithToken(user *entity.User) (*UserWithTokenResponse, error) {
	pair, err := p.tokens.IssuePair(user.ID)
	if err != nil {
		return nil, err
	}
	return &UserWithTokenResponse{UserResponse: *p.ToResponse(user), Token: pair.Access}, nil
}

// ToLoginResponse returns a pair for the client to keep. The embedded token
// is the pair's access token.
func (p *UserPresenter) ToLoginResponse(user *entity.User) (*LoginResponse, error) {
	pair, err := p.tokens.IssuePair(user.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{
		Refresh: pair.Refresh,
		Access:  pair.Access,
		UserWithTokenResponse: UserWithTokenResponse{
			UserResponse: *p.ToResponse(user),
			Token:        pair.Access,
		},
	}, nil
}

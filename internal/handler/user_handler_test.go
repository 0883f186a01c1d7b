package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shareprompts/internal/model"
)

// MockUserService is a mock implementation of UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Provision(ctx context.Context, email, username, image string) (*model.User, error) {
	args := m.Called(ctx, email, username, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestListUserPostsResponseShape(t *testing.T) {
	userID := uuid.New()
	posts := []model.Prompt{
		{ID: uuid.New(), Text: "one", Tag: "a", CreatorID: userID},
		{ID: uuid.New(), Text: "two", Tag: "b", CreatorID: userID},
	}

	promptSvc := new(MockPromptService)
	promptSvc.On("ListByCreator", mock.Anything, userID).Return(posts, nil)

	_, c, rec := newTestContext(http.MethodGet, "")
	c.SetParamNames("id")
	c.SetParamValues(userID.String())

	h := NewUserHandler(new(MockUserService), promptSvc)
	require.NoError(t, h.ListUserPosts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got UserPostsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Data, 2)
	for _, p := range got.Data {
		assert.Equal(t, userID, p.CreatorID)
	}
	promptSvc.AssertExpectations(t)
}

func TestProvisionUser(t *testing.T) {
	user := &model.User{ID: uuid.New(), Email: "maya.okafor@example.com", Username: "maya.okafor"}

	userSvc := new(MockUserService)
	userSvc.On("Provision", mock.Anything, user.Email, user.Username, "").Return(user, nil)

	body := `{"email":"maya.okafor@example.com","username":"maya.okafor"}`
	_, c, rec := newTestContext(http.MethodPost, body)

	h := NewUserHandler(userSvc, new(MockPromptService))
	require.NoError(t, h.ProvisionUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, user.ID, got.ID)
	userSvc.AssertExpectations(t)
}

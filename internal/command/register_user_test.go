package command

import (
	"testing"

	"github.com/jbeshir/fritter-engagement/internal/datasources/mocks"
	"github.com/jbeshir/fritter-engagement/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser_Execute(t *testing.T) {
	t.Run("registers", func(t *testing.T) {
		registrar := mocks.NewMockUserRegistrar(t)
		getter := mocks.NewMockUserGetter(t)

		registrar.EXPECT().RegisterUser(mock.Anything, domain.User{ID: "u1", Username: "Alice", CreatedAt: testNow}).Return(nil)
		getter.EXPECT().GetUser(mock.Anything, "u1").Return(domain.User{ID: "u1", Username: "Alice"}, nil)

		sut := NewRegisterUser(registrar, getter)
		sut.Clock = fixedClock()

		user, err := sut.Execute(testContext(), RegisterUserRequest{UserID: "u1", Username: "Alice"})
		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Username)
	})

	t.Run("invalid_username", func(t *testing.T) {
		_, err := NewRegisterUser(mocks.NewMockUserRegistrar(t), mocks.NewMockUserGetter(t)).
			Execute(testContext(), RegisterUserRequest{UserID: "u1", Username: "not valid"})
		require.ErrorIs(t, err, domain.ErrInvalidUsername)
	})

	t.Run("taken", func(t *testing.T) {
		registrar := mocks.NewMockUserRegistrar(t)
		registrar.EXPECT().RegisterUser(mock.Anything, mock.Anything).Return(domain.ErrInvalidState)

		_, err := NewRegisterUser(registrar, mocks.NewMockUserGetter(t)).
			Execute(testContext(), RegisterUserRequest{UserID: "u1", Username: "alice"})
		require.ErrorIs(t, err, domain.ErrInvalidState)
	})
}

func TestCreateFreet_Execute(t *testing.T) {
	userGetter := mocks.NewMockUserGetter(t)
	creator := mocks.NewMockFreetCreator(t)

	userGetter.EXPECT().GetUser(mock.Anything, "u1").Return(domain.User{}, domain.ErrNotFound)
	creator.EXPECT().CreateFreet(mock.Anything, mock.MatchedBy(func(f domain.Freet) bool {
		return f.AuthorID == "u1" && f.Content == "hello world" && f.CreatedAt.Equal(testNow)
	})).Return(nil)

	sut := NewCreateFreet(userGetter, creator)
	sut.Clock = fixedClock()

	freet, err := sut.Execute(testContext(), CreateFreetRequest{UserID: "u1", Content: " hello world "})
	require.NoError(t, err)
	assert.NotEmpty(t, freet.ID)

	_, err = sut.Execute(testContext(), CreateFreetRequest{UserID: "u1", Content: ""})
	require.ErrorIs(t, err, ErrEmptyFreet)
}

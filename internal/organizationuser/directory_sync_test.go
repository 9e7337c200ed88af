package organizationuser

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDirectorySync_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("subscribes to deprovision channel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := NewMockService(ctrl)
		mockSubscriber := NewMockMessageSubscriber(ctrl)
		sync := NewDirectorySync(mockService, mockSubscriber)

		mockSubscriber.EXPECT().
			Subscribe(ctx, DeprovisionChannel, gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ string, handler func(context.Context, []byte)) error {
				handler(ctx, []byte(`{"organizationId":"org-1","userId":"user-1"}`))
				return nil
			})
		mockService.EXPECT().
			RemoveOrganizationUserByUserId(ctx, "org-1", "user-1", SystemActor{System: EventSystemUserScim}).
			Return(nil)

		require.NoError(t, sync.Start(ctx))
	})

	t.Run("propagates subscription error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockSubscriber := NewMockMessageSubscriber(ctrl)
		sync := NewDirectorySync(NewMockService(ctrl), mockSubscriber)

		mockSubscriber.EXPECT().
			Subscribe(ctx, DeprovisionChannel, gomock.Any()).
			Return(errors.New("redis down"))

		require.Error(t, sync.Start(ctx))
	})
}

func TestDirectorySync_Handle(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		payload   string
		setupMock func(m *MockService)
	}{
		{
			name:    "removes user as scim",
			payload: `{"organizationId":"org-1","userId":"user-1"}`,
			setupMock: func(m *MockService) {
				m.EXPECT().
					RemoveOrganizationUserByUserId(ctx, "org-1", "user-1", SystemActor{System: EventSystemUserScim}).
					Return(nil)
			},
		},
		{
			name:    "swallows removal error",
			payload: `{"organizationId":"org-1","userId":"user-1"}`,
			setupMock: func(m *MockService) {
				m.EXPECT().
					RemoveOrganizationUserByUserId(ctx, "org-1", "user-1", SystemActor{System: EventSystemUserScim}).
					Return(ErrNoConfirmedOwner)
			},
		},
		{
			name:      "ignores malformed payload",
			payload:   `not json`,
			setupMock: func(m *MockService) {},
		},
		{
			name:      "ignores payload without user",
			payload:   `{"organizationId":"org-1"}`,
			setupMock: func(m *MockService) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := NewMockService(ctrl)
			tt.setupMock(mockService)

			NewDirectorySync(mockService, NewMockMessageSubscriber(ctrl)).Handle(ctx, []byte(tt.payload))
		})
	}
}

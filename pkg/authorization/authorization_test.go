package authorization

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
)

func TestCurrentContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name      string
		userId    string
		setupMock func(m *MockMemberRoleChecker)
		wantOwner bool
		wantAdmin bool
		wantErr   bool
	}{
		{
			name:   "owner is owner and admin",
			userId: "user-1",
			setupMock: func(m *MockMemberRoleChecker) {
				m.EXPECT().
					GetMemberRole(ctx, "org-1", "user-1").
					Return(MemberRoleOwner, nil).
					Times(2)
			},
			wantOwner: true,
			wantAdmin: true,
		},
		{
			name:   "admin is admin but not owner",
			userId: "user-1",
			setupMock: func(m *MockMemberRoleChecker) {
				m.EXPECT().
					GetMemberRole(ctx, "org-1", "user-1").
					Return(MemberRoleAdmin, nil).
					Times(2)
			},
			wantAdmin: true,
		},
		{
			name:   "user holds neither role",
			userId: "user-1",
			setupMock: func(m *MockMemberRoleChecker) {
				m.EXPECT().
					GetMemberRole(ctx, "org-1", "user-1").
					Return(MemberRoleUser, nil).
					Times(2)
			},
		},
		{
			name:   "non member holds neither role",
			userId: "user-1",
			setupMock: func(m *MockMemberRoleChecker) {
				m.EXPECT().
					GetMemberRole(ctx, "org-1", "user-1").
					Return("", ErrMemberNotFound).
					Times(2)
			},
		},
		{
			name:      "anonymous user is not looked up",
			userId:    "",
			setupMock: func(m *MockMemberRoleChecker) {},
		},
		{
			name:   "propagates unexpected error from checker",
			userId: "user-1",
			setupMock: func(m *MockMemberRoleChecker) {
				m.EXPECT().
					GetMemberRole(ctx, "org-1", "user-1").
					Return("", errors.New("db down")).
					Times(2)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockChecker := NewMockMemberRoleChecker(ctrl)
			tt.setupMock(mockChecker)

			currentContext := NewCurrentContext(mockChecker)

			isOwner, err := currentContext.IsOrganizationOwner(ctx, "org-1", tt.userId)
			if tt.wantErr != (err != nil) {
				t.Fatalf("IsOrganizationOwner: expected error %v, got %v", tt.wantErr, err)
			}
			if isOwner != tt.wantOwner {
				t.Fatalf("IsOrganizationOwner: expected %v, got %v", tt.wantOwner, isOwner)
			}

			isAdmin, err := currentContext.IsOrganizationAdmin(ctx, "org-1", tt.userId)
			if tt.wantErr != (err != nil) {
				t.Fatalf("IsOrganizationAdmin: expected error %v, got %v", tt.wantErr, err)
			}
			if isAdmin != tt.wantAdmin {
				t.Fatalf("IsOrganizationAdmin: expected %v, got %v", tt.wantAdmin, isAdmin)
			}
		})
	}
}

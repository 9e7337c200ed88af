package organizationuser

import (
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"go.opentelemetry.io/otel/trace/noop"

	"orgusers-api/internal/organizationuser"
	orgpostgres "orgusers-api/pkg/postgres"
)

const (
	pgDb       = "test"
	pgUsername = "test"
	pgPassword = "test"

	migrationsPath = "../../../migrations"
)

func setupPgContainer(t *testing.T) *postgres.PostgresContainer {
	t.Helper()

	postgresContainer, err := postgres.Run(t.Context(),
		"postgres:16-alpine",
		postgres.WithDatabase(pgDb),
		postgres.WithUsername(pgUsername),
		postgres.WithPassword(pgPassword),
		postgres.BasicWaitStrategies(),
		postgres.WithSQLDriver("pgx"),
	)
	require.NoError(t, err)

	return postgresContainer
}

func setupTestRepository(t *testing.T) (*OrganizationUserRepository, *pgxpool.Pool) {
	t.Helper()

	container := setupPgContainer(t)
	t.Cleanup(func() {
		_ = container.Terminate(t.Context())
	})

	connString, err := container.ConnectionString(t.Context(), "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, orgpostgres.RunMigrations(connString, migrationsPath))

	pool, err := pgxpool.New(t.Context(), connString)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	repo := NewOrganizationUserRepository(pool, noop.NewTracerProvider().Tracer("test"))

	return repo, pool
}

func insertOrganization(t *testing.T, pool *pgxpool.Pool) string {
	t.Helper()

	id := uuid.NewString()
	_, err := pool.Exec(t.Context(), `INSERT INTO organizations (id, name) VALUES ($1, $2)`, id, "org-"+id[:8])
	require.NoError(t, err)

	return id
}

func insertOrganizationUser(
	t *testing.T,
	pool *pgxpool.Pool,
	organizationId string,
	userId *string,
	role organizationuser.Role,
	status organizationuser.Status,
) *organizationuser.OrganizationUserDTO {
	t.Helper()

	organizationUser := &organizationuser.OrganizationUserDTO{
		Id:             uuid.NewString(),
		OrganizationId: organizationId,
		UserId:         userId,
		Email:          uuid.NewString() + "@example.com",
		Role:           role,
		Status:         status,
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(t.Context(),
		`INSERT INTO organization_users (id, organization_id, user_id, email, role, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		organizationUser.Id,
		organizationUser.OrganizationId,
		organizationUser.UserId,
		organizationUser.Email,
		string(organizationUser.Role),
		string(organizationUser.Status),
		organizationUser.CreatedAt,
	)
	require.NoError(t, err)

	return organizationUser
}

func stringPtr(s string) *string {
	return &s
}

func requireNotFound(t *testing.T, err error) {
	t.Helper()

	var connectErr *connect.Error
	require.ErrorAs(t, err, &connectErr)
	assert.Equal(t, connect.CodeNotFound, connectErr.Code())
}

func TestPgRepository_GetById(t *testing.T) {
	repo, pool := setupTestRepository(t)
	organizationId := insertOrganization(t, pool)
	member := insertOrganizationUser(t, pool, organizationId, stringPtr("user-1"), organizationuser.RoleAdmin, organizationuser.StatusConfirmed)
	invited := insertOrganizationUser(t, pool, organizationId, nil, organizationuser.RoleUser, organizationuser.StatusInvited)

	t.Run("returns membership", func(t *testing.T) {
		got, err := repo.GetById(t.Context(), member.Id)
		require.NoError(t, err)
		assert.Equal(t, member.Id, got.Id)
		assert.Equal(t, organizationId, got.OrganizationId)
		require.NotNil(t, got.UserId)
		assert.Equal(t, "user-1", *got.UserId)
		assert.Equal(t, organizationuser.RoleAdmin, got.Role)
		assert.Equal(t, organizationuser.StatusConfirmed, got.Status)
	})

	t.Run("returns invited membership without user", func(t *testing.T) {
		got, err := repo.GetById(t.Context(), invited.Id)
		require.NoError(t, err)
		assert.Nil(t, got.UserId)
		assert.Equal(t, organizationuser.StatusInvited, got.Status)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := repo.GetById(t.Context(), uuid.NewString())
		requireNotFound(t, err)
	})
}

func TestPgRepository_GetByOrganizationAndUser(t *testing.T) {
	repo, pool := setupTestRepository(t)
	organizationId := insertOrganization(t, pool)
	otherOrganizationId := insertOrganization(t, pool)
	member := insertOrganizationUser(t, pool, organizationId, stringPtr("user-1"), organizationuser.RoleUser, organizationuser.StatusConfirmed)

	t.Run("returns membership", func(t *testing.T) {
		got, err := repo.GetByOrganizationAndUser(t.Context(), organizationId, "user-1")
		require.NoError(t, err)
		assert.Equal(t, member.Id, got.Id)
	})

	t.Run("returns not found in another organization", func(t *testing.T) {
		_, err := repo.GetByOrganizationAndUser(t.Context(), otherOrganizationId, "user-1")
		requireNotFound(t, err)
	})
}

func TestPgRepository_GetMany(t *testing.T) {
	repo, pool := setupTestRepository(t)
	organizationId := insertOrganization(t, pool)
	first := insertOrganizationUser(t, pool, organizationId, stringPtr("user-1"), organizationuser.RoleUser, organizationuser.StatusConfirmed)
	second := insertOrganizationUser(t, pool, organizationId, stringPtr("user-2"), organizationuser.RoleOwner, organizationuser.StatusConfirmed)

	t.Run("returns only existing ids", func(t *testing.T) {
		got, err := repo.GetMany(t.Context(), []string{first.Id, second.Id, uuid.NewString()})
		require.NoError(t, err)
		require.Len(t, got, 2)

		ids := []string{got[0].Id, got[1].Id}
		assert.ElementsMatch(t, []string{first.Id, second.Id}, ids)
	})

	t.Run("returns empty for no ids", func(t *testing.T) {
		got, err := repo.GetMany(t.Context(), nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestPgRepository_GetManyByOrganizationAndRole(t *testing.T) {
	repo, pool := setupTestRepository(t)
	organizationId := insertOrganization(t, pool)
	otherOrganizationId := insertOrganization(t, pool)
	owner := insertOrganizationUser(t, pool, organizationId, stringPtr("user-1"), organizationuser.RoleOwner, organizationuser.StatusConfirmed)
	invitedOwner := insertOrganizationUser(t, pool, organizationId, nil, organizationuser.RoleOwner, organizationuser.StatusInvited)
	insertOrganizationUser(t, pool, organizationId, stringPtr("user-2"), organizationuser.RoleAdmin, organizationuser.StatusConfirmed)
	insertOrganizationUser(t, pool, otherOrganizationId, stringPtr("user-3"), organizationuser.RoleOwner, organizationuser.StatusConfirmed)

	got, err := repo.GetManyByOrganizationAndRole(t.Context(), organizationId, organizationuser.RoleOwner)
	require.NoError(t, err)
	require.Len(t, got, 2)

	ids := []string{got[0].Id, got[1].Id}
	assert.ElementsMatch(t, []string{owner.Id, invitedOwner.Id}, ids)
}

func TestPgRepository_GetMemberRole(t *testing.T) {
	repo, pool := setupTestRepository(t)
	organizationId := insertOrganization(t, pool)
	insertOrganizationUser(t, pool, organizationId, stringPtr("user-1"), organizationuser.RoleAdmin, organizationuser.StatusConfirmed)
	insertOrganizationUser(t, pool, organizationId, stringPtr("revoked-owner"), organizationuser.RoleOwner, organizationuser.StatusRevoked)
	insertOrganizationUser(t, pool, organizationId, stringPtr("accepted-admin"), organizationuser.RoleAdmin, organizationuser.StatusAccepted)

	t.Run("returns role", func(t *testing.T) {
		role, err := repo.GetMemberRole(t.Context(), organizationId, "user-1")
		require.NoError(t, err)
		assert.Equal(t, organizationuser.RoleAdmin, role)
	})

	t.Run("returns not found for non member", func(t *testing.T) {
		_, err := repo.GetMemberRole(t.Context(), organizationId, "user-2")
		requireNotFound(t, err)
	})

	t.Run("revoked owner has no role", func(t *testing.T) {
		_, err := repo.GetMemberRole(t.Context(), organizationId, "revoked-owner")
		requireNotFound(t, err)
	})

	t.Run("accepted admin has no role until confirmed", func(t *testing.T) {
		_, err := repo.GetMemberRole(t.Context(), organizationId, "accepted-admin")
		requireNotFound(t, err)
	})
}

func TestPgRepository_HasConfirmedProviderUsers(t *testing.T) {
	repo, pool := setupTestRepository(t)
	organizationId := insertOrganization(t, pool)
	unmanagedOrganizationId := insertOrganization(t, pool)

	providerId := uuid.NewString()
	_, err := pool.Exec(t.Context(), `INSERT INTO providers (id, name) VALUES ($1, 'msp')`, providerId)
	require.NoError(t, err)
	_, err = pool.Exec(t.Context(),
		`INSERT INTO provider_organizations (id, provider_id, organization_id) VALUES ($1, $2, $3)`,
		uuid.NewString(), providerId, organizationId)
	require.NoError(t, err)

	t.Run("returns false when provider users are not confirmed", func(t *testing.T) {
		_, err := pool.Exec(t.Context(),
			`INSERT INTO provider_users (id, provider_id, user_id, status) VALUES ($1, $2, 'provider-user-1', 'invited')`,
			uuid.NewString(), providerId)
		require.NoError(t, err)

		got, err := repo.HasConfirmedProviderUsers(t.Context(), organizationId)
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("returns true with a confirmed provider user", func(t *testing.T) {
		_, err := pool.Exec(t.Context(),
			`INSERT INTO provider_users (id, provider_id, user_id, status) VALUES ($1, $2, 'provider-user-2', 'confirmed')`,
			uuid.NewString(), providerId)
		require.NoError(t, err)

		got, err := repo.HasConfirmedProviderUsers(t.Context(), organizationId)
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("returns false for organization without provider", func(t *testing.T) {
		got, err := repo.HasConfirmedProviderUsers(t.Context(), unmanagedOrganizationId)
		require.NoError(t, err)
		assert.False(t, got)
	})
}

func TestPgRepository_Delete(t *testing.T) {
	repo, pool := setupTestRepository(t)
	organizationId := insertOrganization(t, pool)
	member := insertOrganizationUser(t, pool, organizationId, stringPtr("user-1"), organizationuser.RoleUser, organizationuser.StatusConfirmed)

	t.Run("deletes membership", func(t *testing.T) {
		err := repo.Delete(t.Context(), member)
		require.NoError(t, err)

		_, err = repo.GetById(t.Context(), member.Id)
		requireNotFound(t, err)
	})

	t.Run("returns not found when already deleted", func(t *testing.T) {
		err := repo.Delete(t.Context(), member)
		requireNotFound(t, err)
	})
}

func TestPgRepository_DeleteMany(t *testing.T) {
	repo, pool := setupTestRepository(t)
	organizationId := insertOrganization(t, pool)
	first := insertOrganizationUser(t, pool, organizationId, stringPtr("user-1"), organizationuser.RoleUser, organizationuser.StatusConfirmed)
	second := insertOrganizationUser(t, pool, organizationId, stringPtr("user-2"), organizationuser.RoleUser, organizationuser.StatusConfirmed)
	kept := insertOrganizationUser(t, pool, organizationId, stringPtr("user-3"), organizationuser.RoleOwner, organizationuser.StatusConfirmed)

	t.Run("returns deleted ids only", func(t *testing.T) {
		deleted, err := repo.DeleteMany(t.Context(), []string{first.Id, second.Id, uuid.NewString()})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{first.Id, second.Id}, deleted)

		got, err := repo.GetMany(t.Context(), []string{first.Id, second.Id, kept.Id})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, kept.Id, got[0].Id)
	})

	t.Run("already deleted ids are not returned", func(t *testing.T) {
		deleted, err := repo.DeleteMany(t.Context(), []string{first.Id, kept.Id})
		require.NoError(t, err)
		assert.Equal(t, []string{kept.Id}, deleted)
	})

	t.Run("accepts empty input", func(t *testing.T) {
		deleted, err := repo.DeleteMany(t.Context(), nil)
		require.NoError(t, err)
		assert.Empty(t, deleted)
	})
}

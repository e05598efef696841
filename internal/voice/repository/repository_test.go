package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	profileModels "github.com/Azotik83/Eclipse.github.io/internal/profile/model"
	models "github.com/Azotik83/Eclipse.github.io/internal/voice/model"
	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

var (
	testDB      *bun.DB
	pgContainer *postgres.PostgresContainer
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("eclipse"),
		postgres.WithUsername("eclipse"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}
	pgContainer = postgresContainer

	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connection string, %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	sqlDB := sql.OpenDB(connector)
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	tables := []any{
		(*profileModels.Profile)(nil),
		(*models.VoiceRoom)(nil),
		(*models.VoiceParticipant)(nil),
	}
	for _, t := range tables {
		if _, err := testDB.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			testDB.Close()
			log.Fatalf("failed to create table for %T: %v", t, err)
		}
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func truncateVoice(t *testing.T) {
	for _, table := range []string{"voice_participants", "voice_rooms", "profiles"} {
		_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE `+table+` RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
	}
}

func seedUser(t *testing.T, username string) *profileModels.Profile {
	p := &profileModels.Profile{Username: username, DisplayName: username, Role: profileModels.RoleUser}
	_, err := testDB.NewInsert().Model(p).Returning("*").Exec(context.Background())
	require.NoError(t, err)
	return p
}

func seedRoom(t *testing.T, repo *VoiceRepository, channelID uuid.UUID, creator *profileModels.Profile) *models.VoiceRoom {
	room := &models.VoiceRoom{ChannelID: channelID, Name: "lobby", CreatorID: creator.ID, IsActive: true}
	require.NoError(t, repo.CreateRoom(context.Background(), room))
	return room
}

func Test_InsertParticipant_Idempotent(t *testing.T) {
	t.Cleanup(func() { truncateVoice(t) })

	repo := NewVoiceRepository(testDB, logger.Logger{})
	user := seedUser(t, "aria")
	room := seedRoom(t, repo, uuid.New(), user)

	inserted, err := repo.InsertParticipant(context.Background(), &models.VoiceParticipant{RoomID: room.ID, UserID: user.ID})
	require.NoError(t, err)
	assert.True(t, inserted)

	// second seat in the same room is swallowed by the unique pair
	inserted, err = repo.InsertParticipant(context.Background(), &models.VoiceParticipant{RoomID: room.ID, UserID: user.ID})
	require.NoError(t, err)
	assert.False(t, inserted)

	count, err := repo.CountParticipants(context.Background(), room.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func Test_DeleteAllForUser_ReturnsLeftRooms(t *testing.T) {
	t.Cleanup(func() { truncateVoice(t) })

	repo := NewVoiceRepository(testDB, logger.Logger{})
	user := seedUser(t, "aria")
	bystander := seedUser(t, "juno")

	roomA := seedRoom(t, repo, uuid.New(), user)
	roomB := seedRoom(t, repo, uuid.New(), bystander)

	for _, seat := range []*models.VoiceParticipant{
		{RoomID: roomA.ID, UserID: user.ID},
		{RoomID: roomB.ID, UserID: user.ID},
		{RoomID: roomB.ID, UserID: bystander.ID},
	} {
		_, err := repo.InsertParticipant(context.Background(), seat)
		require.NoError(t, err)
	}

	left, err := repo.DeleteAllForUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, left, 2)

	countA, err := repo.CountParticipants(context.Background(), roomA.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, countA)

	// the bystander keeps their seat
	countB, err := repo.CountParticipants(context.Background(), roomB.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, countB)

	// leaving again is a clean no-op
	left, err = repo.DeleteAllForUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func Test_CurrentRoomForUser(t *testing.T) {
	t.Cleanup(func() { truncateVoice(t) })

	repo := NewVoiceRepository(testDB, logger.Logger{})
	user := seedUser(t, "aria")

	room, err := repo.CurrentRoomForUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Nil(t, room)

	seeded := seedRoom(t, repo, uuid.New(), user)
	_, err = repo.InsertParticipant(context.Background(), &models.VoiceParticipant{RoomID: seeded.ID, UserID: user.ID})
	require.NoError(t, err)

	room, err = repo.CurrentRoomForUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, room)
	assert.Equal(t, seeded.ID, room.ID)
	require.Len(t, room.Participants, 1)
	assert.Equal(t, "aria", room.Participants[0].Profile.Username)

	// a deactivated room no longer counts as occupancy
	require.NoError(t, repo.DeactivateRoom(context.Background(), seeded.ID))
	room, err = repo.CurrentRoomForUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Nil(t, room)
}

func Test_ToggleMute_RoundTrip(t *testing.T) {
	t.Cleanup(func() { truncateVoice(t) })

	repo := NewVoiceRepository(testDB, logger.Logger{})
	user := seedUser(t, "aria")
	room := seedRoom(t, repo, uuid.New(), user)

	_, err := repo.InsertParticipant(context.Background(), &models.VoiceParticipant{RoomID: room.ID, UserID: user.ID})
	require.NoError(t, err)

	muted, err := repo.ToggleMute(context.Background(), room.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, muted)

	muted, err = repo.ToggleMute(context.Background(), room.ID, user.ID)
	require.NoError(t, err)
	assert.False(t, muted)
}

func Test_ListActiveRoomPage_SkipsClosedRooms(t *testing.T) {
	t.Cleanup(func() { truncateVoice(t) })

	repo := NewVoiceRepository(testDB, logger.Logger{})
	user := seedUser(t, "aria")
	channelID := uuid.New()

	open := seedRoom(t, repo, channelID, user)
	closed := seedRoom(t, repo, channelID, user)
	require.NoError(t, repo.DeactivateRoom(context.Background(), closed.ID))
	seedRoom(t, repo, uuid.New(), user) // other channel

	rooms, err := repo.ListActiveRoomPage(context.Background(), channelID, time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, open.ID, rooms[0].ID)
}

func Test_ListActiveRoomPage_NewestFirstWithoutOverlap(t *testing.T) {
	t.Cleanup(func() { truncateVoice(t) })

	repo := NewVoiceRepository(testDB, logger.Logger{})
	user := seedUser(t, "aria")
	channelID := uuid.New()

	base := time.Now().Truncate(time.Second)
	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		room := seedRoom(t, repo, channelID, user)
		_, err := testDB.NewUpdate().
			Model((*models.VoiceRoom)(nil)).
			Set("created_at = ?", base.Add(time.Duration(i)*time.Minute)).
			Where("id = ?", room.ID).
			Exec(context.Background())
		require.NoError(t, err)
		ids = append(ids, room.ID)
	}

	first, err := repo.ListActiveRoomPage(context.Background(), channelID, time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, ids[4], first[0].ID)
	assert.Equal(t, ids[3], first[1].ID)
	assert.True(t, first[0].CreatedAt.After(first[1].CreatedAt))

	second, err := repo.ListActiveRoomPage(context.Background(), channelID, first[1].CreatedAt, 2)
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, ids[2], second[0].ID)
	assert.Equal(t, ids[1], second[1].ID)

	// the cursor walk never revisits a room
	seen := map[uuid.UUID]bool{}
	for _, r := range append(first, second...) {
		assert.False(t, seen[r.ID])
		seen[r.ID] = true
	}
}

package reputation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bob = Member{TelegramID: 42, Username: "bob", FirstName: "Боб", LastName: "Смирнов"}

func TestCreditCreatesRecordWithScoreOne(t *testing.T) {
	store := NewMemoryStore()
	service := NewService(store)

	rec, err := service.Credit(context.Background(), bob, "https://example.com/bob.jpg")
	require.NoError(t, err)

	assert.Equal(t, int64(42), rec.TelegramID)
	assert.Equal(t, "bob", rec.Username)
	assert.Equal(t, "Боб Смирнов", rec.FullName)
	assert.Equal(t, "https://example.com/bob.jpg", rec.AvatarURL)
	assert.Equal(t, 1, rec.Reputation)

	all, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreditIncrementsExistingRecord(t *testing.T) {
	store := NewMemoryStore()
	service := NewService(store)
	ctx := context.Background()

	_, err := service.Credit(ctx, bob, "old-avatar")
	require.NoError(t, err)

	// Профиль участника изменился, но инкремент его не трогает
	changed := bob
	changed.Username = "bob_new"
	changed.FirstName = "Роберт"

	rec, err := service.Credit(ctx, changed, "new-avatar")
	require.NoError(t, err)

	assert.Equal(t, 2, rec.Reputation)
	assert.Equal(t, "bob", rec.Username, "username не обновляется при инкременте")
	assert.Equal(t, "Боб Смирнов", rec.FullName, "имя не обновляется при инкременте")
	assert.Equal(t, "old-avatar", rec.AvatarURL, "аватарка не обновляется при инкременте")
}

func TestCreditReplayDoubleCounts(t *testing.T) {
	// Дедупликации событий нет: повторная доставка = повторное начисление
	store := NewMemoryStore()
	service := NewService(store)
	ctx := context.Background()

	_, err := service.Credit(ctx, bob, "")
	require.NoError(t, err)
	rec, err := service.Credit(ctx, bob, "")
	require.NoError(t, err)

	assert.Equal(t, 2, rec.Reputation)
}

func TestRemoveDeletesRecord(t *testing.T) {
	store := NewMemoryStore()
	service := NewService(store)
	ctx := context.Background()

	_, err := service.Credit(ctx, bob, "")
	require.NoError(t, err)

	require.NoError(t, service.Remove(ctx, bob.TelegramID))

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRemoveAbsentRecordIsNoop(t *testing.T) {
	store := NewMemoryStore()
	service := NewService(store)
	ctx := context.Background()

	_, err := service.Credit(ctx, bob, "")
	require.NoError(t, err)

	// Ушёл участник без истории — состояние не меняется, ошибки нет
	require.NoError(t, service.Remove(ctx, 999))

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestLeaderboardSortsByScoreDescending(t *testing.T) {
	store := NewMemoryStore()
	service := NewService(store)
	ctx := context.Background()

	alice := Member{TelegramID: 1, Username: "alice", FirstName: "Алиса"}
	carol := Member{TelegramID: 3, Username: "carol", FirstName: "Кэрол"}

	_, err := service.Credit(ctx, alice, "")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = service.Credit(ctx, bob, "")
		require.NoError(t, err)
	}
	_, err = service.Credit(ctx, carol, "")
	require.NoError(t, err)

	board, err := service.Leaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, board, 3)

	assert.Equal(t, "bob", board[0].Username)
	// Равные очки: порядок хранилища (alice создана раньше carol)
	assert.Equal(t, "alice", board[1].Username)
	assert.Equal(t, "carol", board[2].Username)
}

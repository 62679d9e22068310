package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ravintola-sinet/notify-svc/internal/storage"
	"ravintola-sinet/stats"
)

func TestStore_RecordsDailyCounters(t *testing.T) {
	mr := miniredis.RunT(t)
	store := storage.NewStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), helsinki)
	ctx := context.Background()

	require.NoError(t, store.RecordReservation(ctx, reservationCreated()))
	require.NoError(t, store.RecordReservation(ctx, reservationCreated()))

	reservationDay := stats.DailyKey("2030-06-10")
	assert.Equal(t, "2", mr.HGet(reservationDay, stats.FieldReservations))
	assert.Equal(t, "8", mr.HGet(reservationDay, stats.FieldGuests))
	assert.Equal(t, stats.TTL, mr.TTL(reservationDay))

	soup, err := mr.ZScore(stats.ItemsKey("2030-06-10"), "Salmon soup")
	require.NoError(t, err)
	assert.Equal(t, 4.0, soup)

	// 21:30 UTC is already the next day in Helsinki
	require.NoError(t, store.RecordOrder(ctx, orderPlaced()))

	orderDay := stats.DailyKey("2030-06-11")
	assert.Equal(t, "1", mr.HGet(orderDay, stats.FieldOrders))
	assert.Equal(t, "5620", mr.HGet(orderDay, stats.FieldRevenueCents))
	assert.Equal(t, stats.TTL, mr.TTL(stats.ItemsKey("2030-06-11")))
	assert.Empty(t, mr.HGet(reservationDay, stats.FieldOrders))
}

func TestTelegramNotifier_Send(t *testing.T) {
	var chatID, text string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/botTOKEN/getMe":
			w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"Sinet","username":"sinet_bot"}}`))
		case "/botTOKEN/sendMessage":
			require.NoError(t, r.ParseForm())
			chatID = r.PostForm.Get("chat_id")
			text = r.PostForm.Get("text")
			w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":-100,"type":"group"}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"ok":false,"error_code":404,"description":"Not Found"}`))
		}
	}))
	defer server.Close()

	bot, err := tgbotapi.NewBotAPIWithClient("TOKEN", server.URL+"/bot%s/%s", server.Client())
	require.NoError(t, err)
	notifier := &storage.TelegramNotifier{Bot: bot, ChatID: -100}

	require.NoError(t, notifier.Send(context.Background(), "New delivery order #5"))

	assert.Equal(t, "-100", chatID)
	assert.Equal(t, "New delivery order #5", text)
}

func TestLogNotifier_NeverFails(t *testing.T) {
	assert.NoError(t, storage.LogNotifier{}.Send(context.Background(), "hello"))
}

package handler

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"sync"
	"time"

	"ground_manager/database"
	"ground_manager/helper"
	"ground_manager/utils"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	redisOnce   sync.Once
	redisClient *redis.Client
)

func getRedis() *redis.Client {
	redisOnce.Do(func() {
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		redisClient = redis.NewClient(&redis.Options{Addr: addr})
	})
	return redisClient
}

type slotMessageWriter interface {
	WriteMessage(messageType int, data []byte) error
}

// relaySlotUpdates forwards each published board exactly once to one
// connection, stopping on the first write failure.
func relaySlotUpdates(ch <-chan *redis.Message, w slotMessageWriter) {
	for msg := range ch {
		if err := w.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
			return
		}
	}
}

// SlotWebsocket streams the live slot board for one date. Clients get the
// current board on connect, then every update published for that date.
func SlotWebsocket(c *websocket.Conn) {
	defer c.Close()

	dateStr := c.Params("date")
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		c.WriteJSON(map[string]string{"error": "invalid date"})
		return
	}

	if views, err := helper.ResolveAvailability(database.DB, date, time.Now()); err == nil {
		c.WriteJSON(views)
	}

	pubsub := getRedis().Subscribe(context.Background(), "slots:"+date.String())
	defer pubsub.Close()

	relaySlotUpdates(pubsub.Channel(), c)
}

// PublishSlotUpdate recomputes the board for a date and pushes it onto the
// redis channel the websocket subscribers listen on. Failures are logged only;
// the triggering request already succeeded.
func PublishSlotUpdate(dateStr string) {
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		return
	}
	views, err := helper.ResolveAvailability(database.DB, date, time.Now())
	if err != nil {
		log.Printf("slot update: resolve %s failed: %v", dateStr, err)
		return
	}
	payload, err := json.Marshal(views)
	if err != nil {
		return
	}
	if err := getRedis().Publish(context.Background(), "slots:"+date.String(), payload).Err(); err != nil {
		log.Printf("slot update: publish %s failed: %v", dateStr, err)
	}
}

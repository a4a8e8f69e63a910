package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Topics are change signals, not payloads. A subscriber that receives one
// re-queries the snapshot it cares about, so a coalesced or dropped signal
// only delays convergence until the next event.
const (
	TopicGallery    = "gallery"
	TopicModeration = "moderation"

	eventsChannel = "kreartif:events"
)

func ProfileTopic(userID uuid.UUID) string {
	return "profile:" + userID.String()
}

func NotificationsTopic(userID uuid.UUID) string {
	return "notifications:" + userID.String()
}

type RealtimeService interface {
	Publish(ctx context.Context, topics ...string)
	Subscribe(topic string) (<-chan string, func())
	Run(ctx context.Context)
}

type realtimeService struct {
	redisClient *redis.Client
	instanceID  string

	mu   sync.RWMutex
	subs map[string]map[chan string]struct{}
}

func NewRealtimeService(redisClient *redis.Client) RealtimeService {
	return &realtimeService{
		redisClient: redisClient,
		instanceID:  uuid.New().String(),
		subs:        make(map[string]map[chan string]struct{}),
	}
}

func (s *realtimeService) Publish(ctx context.Context, topics ...string) {
	for _, topic := range topics {
		s.broadcastLocal(topic)

		if s.redisClient != nil {
			payload := s.instanceID + "|" + topic
			if err := s.redisClient.Publish(ctx, eventsChannel, payload).Err(); err != nil {
				fmt.Printf("Failed to publish event %s: %v\n", topic, err)
			}
		}
	}
}

func (s *realtimeService) Subscribe(topic string) (<-chan string, func()) {
	ch := make(chan string, 8)

	s.mu.Lock()
	if s.subs[topic] == nil {
		s.subs[topic] = make(map[chan string]struct{})
	}
	s.subs[topic][ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if set, ok := s.subs[topic]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(s.subs, topic)
			}
		}
		s.mu.Unlock()
	}

	return ch, cancel
}

// Run relays events published by other instances into the local hub. It
// blocks until the context is cancelled.
func (s *realtimeService) Run(ctx context.Context) {
	if s.redisClient == nil {
		return
	}

	pubsub := s.redisClient.Subscribe(ctx, eventsChannel)
	defer pubsub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-pubsub.Channel():
			if !ok {
				return
			}
			instanceID, topic, found := strings.Cut(msg.Payload, "|")
			if !found || instanceID == s.instanceID {
				continue
			}
			s.broadcastLocal(topic)
		}
	}
}

func (s *realtimeService) broadcastLocal(topic string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for ch := range s.subs[topic] {
		select {
		case ch <- topic:
		default:
		}
	}
}

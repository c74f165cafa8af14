package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CoursesPubSub broadcasts course mutations (bookings, admin edits) so other
// processes can drop their cached availability.
type CoursesPubSub struct {
	rdb     *redis.Client
	channel string
}

func NewCoursesPubSub(rdb *redis.Client) *CoursesPubSub {
	return &CoursesPubSub{
		rdb:     rdb,
		channel: ChannelCoursesChanged(),
	}
}

type courseChangedMsg struct {
	Type     string `json:"type"`
	CourseID int64  `json:"course_id"`
	TsUnix   int64  `json:"ts_unix"`
}

func (p *CoursesPubSub) PublishCourseChanged(ctx context.Context, courseID int64) error {
	msg := courseChangedMsg{
		Type:     "course_changed",
		CourseID: courseID,
		TsUnix:   time.Now().Unix(),
	}

	b, _ := json.Marshal(msg)

	return p.rdb.Publish(ctx, p.channel, b).Err()
}

func (p *CoursesPubSub) Subscribe(ctx context.Context, handler func(ctx context.Context, courseID int64)) error {
	sub := p.rdb.Subscribe(ctx, p.channel)
	defer sub.Close()

	ch := sub.Channel(redis.WithChannelSize(256))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var ev courseChangedMsg
			if err := json.Unmarshal([]byte(m.Payload), &ev); err == nil &&
				ev.CourseID != 0 {
				handler(ctx, ev.CourseID)
			}
		}
	}
}

//go:build e2e

package queue

import (
	"context"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRabbit(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "rabbitmq:3.13-alpine",
			ExposedPorts: []string{"5672/tcp"},
			WaitingFor:   wait.ForListeningPort("5672/tcp").WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5672")
	require.NoError(t, err)
	return "amqp://guest:guest@" + host + ":" + port.Port() + "/"
}

func TestAMQPPublisher_Publish(t *testing.T) {
	url := startRabbit(t)

	var p *AMQPPublisher
	require.Eventually(t, func() bool {
		var err error
		p, err = NewAMQPPublisher(url, "hotel.escalations.test")
		return err == nil
	}, 60*time.Second, time.Second)
	t.Cleanup(func() { _ = p.Close() })

	require.NoError(t, p.Publish(context.Background(), "escalation.created", []byte(`{"complaint":"cold shower"}`)))

	conn, err := amqp.Dial(url)
	require.NoError(t, err)
	defer conn.Close()
	ch, err := conn.Channel()
	require.NoError(t, err)
	defer ch.Close()

	var msg amqp.Delivery
	require.Eventually(t, func() bool {
		var ok bool
		msg, ok, err = ch.Get("hotel.escalations.test", true)
		return err == nil && ok
	}, 10*time.Second, 100*time.Millisecond)

	assert.Equal(t, "escalation.created", msg.Type)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.JSONEq(t, `{"complaint":"cold shower"}`, string(msg.Body))
}

package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	rabbitImage   = "rabbitmq:3.13-alpine"
	rabbitPort    = "5672/tcp"
	rabbitStartup = 90 * time.Second
)

// RabbitMQ is a throwaway broker for integration tests. Callers dial URL
// themselves, the same way the storefront does at startup.
type RabbitMQ struct {
	URL string
}

// StartRabbitMQ runs a broker container for the duration of t. The container
// is terminated by t.Cleanup.
func StartRabbitMQ(t *testing.T) *RabbitMQ {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        rabbitImage,
			ExposedPorts: []string{rabbitPort},
			WaitingFor:   wait.ForListeningPort(rabbitPort).WithStartupTimeout(rabbitStartup),
		},
		Started: true,
	})
	require.NoError(t, err, "start %s", rabbitImage)

	t.Cleanup(func() {
		stopCtx, stop := context.WithTimeout(context.Background(), 30*time.Second)
		defer stop()
		if err := container.Terminate(stopCtx); err != nil {
			t.Logf("terminate rabbitmq: %v", err)
		}
	})

	endpoint, err := container.PortEndpoint(ctx, rabbitPort, "")
	require.NoError(t, err)

	return &RabbitMQ{URL: fmt.Sprintf("amqp://guest:guest@%s/", endpoint)}
}

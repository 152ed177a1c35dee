package asynqserver

import (
	"testing"

	"github.com/skyticket/backend/internal/config"
	"github.com/skyticket/backend/internal/queue/task"
	"github.com/skyticket/backend/internal/worker"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
)

func TestRedisOptions(t *testing.T) {
	var single config.Cache
	single.Type = "redis"
	single.Redis.Address = "localhost:6379"
	single.Redis.Password = "pw"

	assert.Equal(t, asynq.RedisClientOpt{Addr: "localhost:6379", Password: "pw"}, RedisOptions(single))

	var cluster config.Cache
	cluster.Type = "redisCluster"
	cluster.RedisCluster.Addresses = []string{"a:7000", "b:7001"}

	assert.Equal(t, asynq.RedisClusterClientOpt{Addrs: []string{"a:7000", "b:7001"}}, RedisOptions(cluster))
}

func TestGetQueues(t *testing.T) {
	_, queues := getQueues(&worker.Workers{})

	assert.Contains(t, queues, task.SendOtpQueueName)
	assert.Contains(t, queues, task.SendWelcomeEmailQueueName)
	assert.Greater(t, queues[task.SendOtpQueueName], queues[task.SendWelcomeEmailQueueName])
}

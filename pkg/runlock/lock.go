package runlock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrLocked возвращается, если блокировка уже захвачена другим процессом
	ErrLocked = errors.New("runlock: already locked")

	// ErrNotHeld возвращается, если ключ истёк или принадлежит другому процессу
	ErrNotHeld = errors.New("runlock: lock is not held")
)

// Освобождаем ключ только если он всё ещё принадлежит нам
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Продлеваем TTL только своего ключа
var extendScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// Lock распределённая блокировка на Redis (SET NX + TTL)
type Lock struct {
	client redis.Scripter
	key    string
	ttl    time.Duration
	token  string
}

// Locker минимальный набор команд Redis, нужный блокировке
type Locker interface {
	redis.Scripter
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

// Acquire пытается захватить ключ key на ttl
func Acquire(ctx context.Context, client Locker, key string, ttl time.Duration) (*Lock, error) {
	token := uuid.NewString()

	ok, err := client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("runlock: setnx %s: %w", key, err)
	}
	if !ok {
		return nil, ErrLocked
	}

	return &Lock{client: client, key: key, ttl: ttl, token: token}, nil
}

// Release освобождает блокировку
func (l *Lock) Release(ctx context.Context) error {
	if err := releaseScript.Run(ctx, l.client, []string{l.key}, l.token).Err(); err != nil {
		return fmt.Errorf("runlock: release %s: %w", l.key, err)
	}
	return nil
}

// Extend продлевает блокировку ещё на ttl с текущего момента
func (l *Lock) Extend(ctx context.Context) error {
	n, err := extendScript.Run(ctx, l.client, []string{l.key}, l.token, l.ttl.Milliseconds()).Int64()
	if err != nil {
		return fmt.Errorf("runlock: extend %s: %w", l.key, err)
	}
	if n == 0 {
		return ErrNotHeld
	}
	return nil
}

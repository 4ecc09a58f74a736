package redis

import (
	"OmniCalc/pkg/log"
	"context"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const RatesKey = "currency:rates"

type IRedis interface {
	GetRates(ctx context.Context) (map[string]float64, error)
	SetRates(ctx context.Context, rates map[string]float64) error
	SeedRates(ctx context.Context, rates map[string]float64) (bool, error)
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	log.Info(log.Fields{"address": redisAddr, "db": db}, "Connecting to Redis")

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Error(log.Fields{"address": redisAddr, "error": err.Error()}, "Failed to connect to Redis")
	} else {
		log.Info(log.Fields{"address": redisAddr}, "Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func NewFromClient(client *redis.Client) IRedis {
	return &redisClient{client: client}
}

func (r *redisClient) GetRates(ctx context.Context) (map[string]float64, error) {
	raw, err := r.client.HGetAll(ctx, RatesKey).Result()
	if err != nil {
		log.Error(log.Fields{"key": RatesKey, "error": err.Error()}, "Error reading rates")
		return nil, err
	}

	rates := make(map[string]float64, len(raw))
	for code, value := range raw {
		rate, err := strconv.ParseFloat(value, 64)
		if err != nil {
			log.Warn(log.Fields{"key": RatesKey, "code": code, "value": value}, "Ignoring malformed rate")
			continue
		}
		rates[code] = rate
	}

	log.Debug(log.Fields{"key": RatesKey, "count": len(rates)}, "Loaded rates")
	return rates, nil
}

func (r *redisClient) SetRates(ctx context.Context, rates map[string]float64) error {
	if len(rates) == 0 {
		return nil
	}

	values := make(map[string]interface{}, len(rates))
	for code, rate := range rates {
		values[code] = strconv.FormatFloat(rate, 'f', -1, 64)
	}

	if err := r.client.HSet(ctx, RatesKey, values).Err(); err != nil {
		log.Error(log.Fields{"key": RatesKey, "error": err.Error()}, "Error writing rates")
		return err
	}

	log.Debug(log.Fields{"key": RatesKey, "count": len(rates)}, "Stored rates")
	return nil
}

// SeedRates writes rates only when the hash does not exist yet, so rates an
// operator edited in Redis survive restarts. It reports whether it wrote.
func (r *redisClient) SeedRates(ctx context.Context, rates map[string]float64) (bool, error) {
	exists, err := r.client.Exists(ctx, RatesKey).Result()
	if err != nil {
		return false, err
	}
	if exists > 0 {
		return false, nil
	}

	if err := r.SetRates(ctx, rates); err != nil {
		return false, err
	}
	return true, nil
}

/*
* Copyright 2022-present Open Networking Foundation
* Licensed under the Apache License, Version 2.0 (the "License");
* you may not use this file except in compliance with the License.
* You may obtain a copy of the License at
*
* http://www.apache.org/licenses/LICENSE-2.0
*
* Unless required by applicable law or agreed to in writing, software
* distributed under the License is distributed on an "AS IS" BASIS,
* WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
* See the License for the specific language governing permissions and
* limitations under the License.
 */

package database

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// Background returns a non-nil, empty Context. It is never canceled, has no values
// and has no deadline. It is typically used by the main function initialization,
// tests and as the top-level Context for incoming requests.
var ctx = context.Background()

const redisSentinelPort int = 26379

// Client represents the set of APIs a KV Client must implement
type Client interface {
	GetAll(path KVPath) (map[string]*Data, error)
	Get(path KVPath, key string) (*Data, error)
	GetValue(path KVPath) (*Data, error)
}

// RedisClient represents the Redis KV store client
type RedisClient struct {
	redisClient redis.UniversalClient /* Redis client object*/
}

// NewRedisClient create a new redis client for mgcctl.
func NewRedisClient(address string, timeout int) (*RedisClient, error) {
	var redClient *redis.Client
	duration := time.Duration(timeout) * time.Second
	split := strings.Split(address, ":")
	if len(split) != 2 {
		return nil, fmt.Errorf("Wrong address %s", address)
	}
	port, err := strconv.Atoi(split[1])
	if err != nil {
		return nil, err
	}

	/* We are initiating the redis HA client incase of redis sentinel port(26379) is configured*/
	if port == redisSentinelPort {
		redClient = redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:    "mymaster",
			SentinelAddrs: []string{address},
			Password:      "", // no password set
			DB:            0,  // use default DB
			DialTimeout:   duration,
			ReadTimeout:   duration,
			WriteTimeout:  duration,
			PoolTimeout:   duration,
			IdleTimeout:   duration,
			MaxRetries:    10,
			PoolSize:      10,
		})
	} else {
		/* We are initiating the single redis client incase of standard redis port is configured */
		redClient = redis.NewClient(&redis.Options{
			Addr:        address,
			Password:    "", // no password set
			DB:          0,  // use default DB
			DialTimeout: duration,
			ReadTimeout: duration,
		})
	}

	if redClient == nil {
		return nil, fmt.Errorf("Failed to create redis client")
	}
	return NewRedisClientFrom(redClient), nil
}

// NewRedisClientFrom wraps an existing redis client
func NewRedisClientFrom(rc redis.UniversalClient) *RedisClient {
	return &RedisClient{redisClient: rc}
}

// GetAll fetches all values stored under the path. Values kept as a redis
// hash and values kept as plain keys are both returned.
func (rc *RedisClient) GetAll(path KVPath) (map[string]*Data, error) {
	kvPair := make(map[string]*Data)
	resp, err := rc.redisClient.HGetAll(ctx, string(path)).Result()
	if err != nil && !isWrongType(err) {
		return nil, err
	}
	for k, v := range resp {
		kvPair[k] = &Data{Key: k, Value: []byte(v)}
	}

	iter := rc.redisClient.Scan(ctx, 0, string(path)+"*", 0).Iterator()
	for iter.Next(ctx) {
		fullKey := iter.Val()
		v, err := rc.redisClient.Get(ctx, fullKey).Result()
		if err != nil {
			// hashes and vanished keys are skipped
			continue
		}
		key := strings.TrimPrefix(fullKey, string(path))
		kvPair[key] = &Data{Key: key, Value: []byte(v)}
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return kvPair, nil
}

// Get to fetch single value
func (rc *RedisClient) Get(basePath KVPath, key string) (*Data, error) {
	return rc.GetValue(basePath + KVPath(key))
}

// GetValue fetches the value kept at the path, either as a plain key or as
// a field of the redis hash named by the parent path.
func (rc *RedisClient) GetValue(path KVPath) (*Data, error) {
	resp, err := rc.redisClient.Get(ctx, string(path)).Result()
	if err == nil {
		return &Data{Key: string(path), Value: []byte(resp)}, nil
	}
	if err != redis.Nil && !isWrongType(err) {
		return nil, err
	}

	hash, keyStr := SplitHashKey(string(path))
	resp, err = rc.redisClient.HGet(ctx, hash, keyStr).Result()
	if err == redis.Nil || isWrongType(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &Data{Key: keyStr, Value: []byte(resp)}, nil
}

// SplitHashKey splits the key path into hash and key for redis hash kv pair
func SplitHashKey(keyPath string) (string, string) {
	idx := strings.LastIndex(keyPath, "/")
	if idx < 0 {
		return "", keyPath
	}
	return keyPath[:idx+1], keyPath[idx+1:]
}

func isWrongType(err error) bool {
	var rerr redis.Error
	return errors.As(err, &rerr) && strings.HasPrefix(rerr.Error(), "WRONGTYPE")
}

// spooltrack-admin mints and revokes sessions directly against the session
// store. The service itself has no login endpoint; operators issue tokens
// with this tool and hand them to the UI or to scripts.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/spooltrack/spooltrack/pkg/session"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	redisAddr := flag.String("redis-addr", "localhost:6379", "Redis address of the session store")
	redisPassword := flag.String("redis-password", "", "Redis password")
	redisDB := flag.Int("redis-db", 0, "Redis database number")
	username := flag.String("user", "", "Username to mint a session for")
	role := flag.String("role", "user", "Role: admin, manager or user")
	ttl := flag.Duration("ttl", 12*time.Hour, "Session lifetime (0 for no expiry)")
	revoke := flag.String("revoke", "", "Token to revoke instead of minting")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr:     *redisAddr,
		Password: *redisPassword,
		DB:       *redisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Cannot reach Redis at %s: %v", *redisAddr, err)
	}

	store := session.NewRedisStore(client)

	if *revoke != "" {
		if err := store.Revoke(ctx, *revoke); err != nil {
			log.Fatalf("Failed to revoke session: %v", err)
		}
		log.Info("Session revoked")
		return
	}

	if *username == "" {
		log.Fatal("-user is required when minting a session")
	}
	if !session.Role(*role).Valid() {
		log.Fatalf("Invalid role %q (must be admin, manager or user)", *role)
	}

	caller := session.Caller{
		ID:       uuid.NewString(),
		Username: *username,
		Role:     session.Role(*role),
	}

	token, err := store.Create(ctx, caller, *ttl)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	log.WithFields(logrus.Fields{
		"user": caller.Username,
		"role": caller.Role,
		"ttl":  ttl.String(),
	}).Info("Session created")
	fmt.Println(token)
}

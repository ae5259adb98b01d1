package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/itemforge/internal/entities/itemdef"
	"github.com/KirkDiggler/itemforge/internal/repositories/templates"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning item templates...")

	prefix := templates.Key("")
	indexKey := templates.IndexKey()

	indexed, err := client.SMembers(ctx, indexKey).Result()
	if err != nil {
		log.Fatal("Failed to read template index:", err)
	}
	inIndex := make(map[string]bool, len(indexed))
	for _, id := range indexed {
		inIndex[id] = true
	}

	var (
		corruptedKeys []string
		unindexed     []string
		checkedCount  int
		stored        = make(map[string]bool)
	)

	iter := client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if key == indexKey {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		id := strings.TrimPrefix(key, prefix)
		var tmpl itemdef.Template
		if err := json.Unmarshal([]byte(data), &tmpl); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}
		if tmpl.ID != id {
			fmt.Printf("✗ %s holds template %q\n", key, tmpl.ID)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		stored[id] = true
		if !inIndex[id] {
			unindexed = append(unindexed, id)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	var dangling []string
	for _, id := range indexed {
		if !stored[id] {
			dangling = append(dangling, id)
		}
	}

	fmt.Printf("\nChecked %d templates: %d corrupted, %d missing from the index, %d dangling index entries\n",
		checkedCount, len(corruptedKeys), len(unindexed), len(dangling))

	if len(corruptedKeys) == 0 && len(unindexed) == 0 && len(dangling) == 0 {
		fmt.Println("Nothing to repair!")
		return
	}

	for _, key := range corruptedKeys {
		fmt.Printf("  corrupted: %s\n", key)
	}
	for _, id := range unindexed {
		fmt.Printf("  unindexed: %s\n", id)
	}
	for _, id := range dangling {
		fmt.Printf("  dangling:  %s\n", id)
	}

	fmt.Print("\nDelete corrupted templates and fix the index? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response) // nolint:errcheck // empty input means no

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	pipe := client.TxPipeline()
	for _, key := range corruptedKeys {
		pipe.Del(ctx, key)
		pipe.SRem(ctx, indexKey, strings.TrimPrefix(key, prefix))
	}
	for _, id := range unindexed {
		pipe.SAdd(ctx, indexKey, id)
	}
	for _, id := range dangling {
		pipe.SRem(ctx, indexKey, id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.Fatal("Repair failed:", err)
	}

	fmt.Println("\nRepair complete!")
}

// seed_options.go: standalone script to load a wheel's options from a list
// file through the Wheel admin API.
//
// The list is either YAML ([{name, weight}]) or plain lines like
//
//	- Pizza = 3
//	- Sushi
//
// where a missing weight means 1. Lines starting with # are ignored.
//
// Usage:
//
//	go run scripts/seed_options.go -list lunch.md -api http://localhost:8700 -token $WHEEL_ADMIN_TOKEN
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type option struct {
	Name   string `json:"name" yaml:"name"`
	Weight int    `json:"weight" yaml:"weight"`
}

func main() {
	listPath := flag.String("list", "options.md", "path to the option list")
	apiURL := flag.String("api", "http://localhost:8700", "Wheel API base URL")
	token := flag.String("token", os.Getenv("WHEEL_ADMIN_TOKEN"), "admin bearer token")
	appendMode := flag.Bool("append", false, "add to the current wheel instead of replacing it")
	dryRun := flag.Bool("dry-run", false, "print options without posting")
	flag.Parse()

	f, err := os.Open(*listPath)
	if err != nil {
		log.Fatalf("open %s: %v", *listPath, err)
	}
	defer f.Close()

	var items []option
	switch strings.ToLower(filepath.Ext(*listPath)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(f).Decode(&items); err != nil && err != io.EOF {
			log.Fatalf("parse %s: %v", *listPath, err)
		}
	default:
		items, err = parseLines(f)
		if err != nil {
			log.Fatalf("scan %s: %v", *listPath, err)
		}
	}

	log.Printf("parsed %d options from %s", len(items), *listPath)

	if *dryRun {
		for i, item := range items {
			fmt.Printf("[%d] %s (weight=%d)\n", i, item.Name, item.Weight)
		}
		return
	}
	if *token == "" {
		log.Fatal("an admin token is required (-token or WHEEL_ADMIN_TOKEN)")
	}

	client := &http.Client{}
	if !*appendMode {
		status, err := send(client, http.MethodPut, *apiURL+"/api/v1/options", *token, items)
		if err != nil {
			log.Fatalf("replace options: %v", err)
		}
		if status != http.StatusOK {
			log.Fatalf("replace options: status %d", status)
		}
		log.Printf("done: wheel replaced with %d options", len(items))
		return
	}

	created, skipped := 0, 0
	for _, item := range items {
		status, err := send(client, http.MethodPost, *apiURL+"/api/v1/options", *token, item)
		if err != nil {
			log.Printf("skip %q: %v", item.Name, err)
			skipped++
			continue
		}
		if status == http.StatusCreated {
			created++
		} else {
			log.Printf("skip %q: status %d", item.Name, status)
			skipped++
		}
	}

	log.Printf("done: %d created, %d skipped", created, skipped)
}

func parseLines(r io.Reader) ([]option, error) {
	var items []option
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimLeft(line, "-*"))

		item := option{Name: line, Weight: 1}
		if name, weight, ok := strings.Cut(line, "="); ok {
			w, err := strconv.Atoi(strings.TrimSpace(weight))
			if err != nil {
				log.Printf("bad weight for %q, using 1", name)
			} else {
				item.Weight = w
			}
			item.Name = strings.TrimSpace(name)
		}
		if item.Name != "" {
			items = append(items, item)
		}
	}
	return items, scanner.Err()
}

func send(client *http.Client, method, url, token string, v interface{}) (int, error) {
	body, _ := json.Marshal(v)
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var e struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&e) == nil && e.Error != "" {
			log.Printf("server said: %s", e.Error)
		}
	}
	return resp.StatusCode, nil
}

// Command smoke checks a running portfolio deployment.
//
// It verifies /health and, unless -skip-contact is set, submits a contact
// message the same way the browser form does. If the API cannot deliver
// the message, the mailto fallback link is printed instead.
//
// Usage:
//
//	go run ./cmd/smoke -url=https://www.ankitraj.cloud -email=me@example.com
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/ankitraj/portfolio/internal/config"
	"github.com/ankitraj/portfolio/internal/contact"
	"github.com/ankitraj/portfolio/internal/contactclient"
	"github.com/ankitraj/portfolio/internal/site"
	"github.com/ankitraj/portfolio/pkg/logging"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	var (
		baseURL     = flag.String("url", "http://localhost:"+cfg.Port, "site base URL")
		name        = flag.String("name", "Smoke Test", "contact name")
		email       = flag.String("email", "smoke@example.com", "contact email")
		message     = flag.String("message", "Automated smoke test "+time.Now().UTC().Format(time.RFC3339), "contact message")
		skipContact = flag.Bool("skip-contact", false, "only check /health")
		timeout     = flag.Duration("timeout", 15*time.Second, "overall timeout")
	)
	flag.Parse()

	logger := logging.NewWithOptions(cfg.LogLevel, "text", os.Stderr)
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	httpClient := &http.Client{Timeout: *timeout}
	if err := checkHealth(ctx, httpClient, *baseURL); err != nil {
		fmt.Fprintf(os.Stderr, "health: FAIL: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("health: OK")

	if *skipContact {
		return
	}

	controller := contactclient.NewController(
		contactclient.NewClient(*baseURL, httpClient),
		printNotifier{out: os.Stdout},
		printNavigator{out: os.Stdout},
		cfg.ContactRecipient,
		logger,
	)
	res := controller.Submit(ctx, contact.Submission{Name: *name, Email: *email, Message: *message})
	switch res.Outcome {
	case contactclient.OutcomeSent:
		fmt.Println("contact: OK")
	default:
		fmt.Fprintf(os.Stderr, "contact: FAIL: %v\n", res.Err)
		os.Exit(1)
	}
}

func checkHealth(ctx context.Context, client *http.Client, baseURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(baseURL, "/")+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	var body site.HealthResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if body.Status != "healthy" {
		return fmt.Errorf("unexpected status %q", body.Status)
	}
	if _, err := time.Parse(time.RFC3339Nano, body.Timestamp); err != nil {
		return fmt.Errorf("bad timestamp %q: %w", body.Timestamp, err)
	}
	return nil
}

type printNotifier struct {
	out io.Writer
}

func (p printNotifier) Notify(n contactclient.Notification) {
	fmt.Fprintf(p.out, "[%s] %s\n", n.Kind, n.Message)
}

type printNavigator struct {
	out io.Writer
}

func (p printNavigator) Navigate(url string) error {
	_, err := fmt.Fprintf(p.out, "fallback: %s\n", url)
	return err
}

package main

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	"github.com/ankitraj/portfolio/internal/app/bootstrap"
	appconfig "github.com/ankitraj/portfolio/internal/config"
	"github.com/ankitraj/portfolio/internal/lambdaproxy"
	"github.com/ankitraj/portfolio/internal/notify"
	"github.com/ankitraj/portfolio/pkg/logging"
)

type fakeSES struct {
	inputs []*sesv2.SendEmailInput
	err    error
}

func (f *fakeSES) SendEmail(_ context.Context, in *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	return &sesv2.SendEmailOutput{MessageId: aws.String("id-1")}, nil
}

func newProxy(t *testing.T, ses *fakeSES) *lambdaproxy.Proxy {
	t.Helper()
	cfg := &appconfig.Config{
		EmailProvider:      appconfig.ProviderAuto,
		LambdaFunctionName: "portfolio",
		IndexFile:          "index.html",
		ContactRecipient:   "owner@example.dev",
		ContactFromEmail:   "contact@example.dev",
		ContactFromName:    "Portfolio",
		SiteName:           "example.dev",
	}
	opts := bootstrap.Options{
		NewSES: func(context.Context, *appconfig.Config) (notify.SESAPI, error) { return ses, nil },
	}
	handler, err := bootstrap.BuildHandler(context.Background(), cfg, logging.New("error"), opts)
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}
	return lambdaproxy.New(handler, logging.New("error"))
}

func contactEvent(body string) events.APIGatewayV2HTTPRequest {
	return events.APIGatewayV2HTTPRequest{
		RawPath: "/api/contact",
		Headers: map[string]string{"content-type": "application/json"},
		Body:    body,
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			DomainName: "www.example.dev",
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method: http.MethodPost,
				Path:   "/api/contact",
			},
		},
	}
}

func TestLambdaContactSendsViaSES(t *testing.T) {
	ses := &fakeSES{}
	resp, err := newProxy(t, ses).Handle(context.Background(), contactEvent(`{"name":"Test","email":"a@b.com","message":"hi"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, resp.StatusCode, resp.Body)
	}
	if !strings.Contains(resp.Body, "Message sent successfully!") {
		t.Fatalf("unexpected body %q", resp.Body)
	}
	if len(ses.inputs) != 1 {
		t.Fatalf("expected one SES call, got %d", len(ses.inputs))
	}
	if got := ses.inputs[0].ReplyToAddresses; len(got) != 1 || got[0] != "a@b.com" {
		t.Fatalf("expected reply-to a@b.com, got %v", got)
	}
}

func TestLambdaContactProviderFailure(t *testing.T) {
	ses := &fakeSES{err: errors.New("MessageRejected: Email address is not verified")}
	resp, err := newProxy(t, ses).Handle(context.Background(), contactEvent(`{"name":"Test","email":"a@b.com","message":"hi"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, resp.StatusCode)
	}
	if strings.Contains(resp.Body, "not verified") {
		t.Fatalf("provider detail leaked: %q", resp.Body)
	}
}

func TestLambdaSPAFallback(t *testing.T) {
	evt := events.APIGatewayV2HTTPRequest{
		RawPath: "/this-page-does-not-exist",
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			DomainName: "www.example.dev",
			HTTP:       events.APIGatewayV2HTTPRequestContextHTTPDescription{Method: http.MethodGet},
		},
	}
	resp, err := newProxy(t, &fakeSES{}).Handle(context.Background(), evt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if resp.IsBase64Encoded || !strings.Contains(strings.ToLower(resp.Body), "<!doctype html>") {
		t.Fatalf("expected index document, got %q", resp.Body)
	}
}

package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewTwilioClientRequiresCredentials(t *testing.T) {
	if _, err := NewTwilioClient(TwilioOptions{AccountSID: "", AuthToken: "token"}); err == nil {
		t.Fatal("expected error for missing account sid")
	}
	if _, err := NewTwilioClient(TwilioOptions{AccountSID: "AC123", AuthToken: " "}); err == nil {
		t.Fatal("expected error for missing auth token")
	}
}

func TestTwilioSend(t *testing.T) {
	var gotPath, gotFrom, gotTo, gotBody string
	var gotUser, gotPass string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		gotFrom = r.PostFormValue("From")
		gotTo = r.PostFormValue("To")
		gotBody = r.PostFormValue("Body")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"SM1234567890"}`))
	}))
	defer srv.Close()

	client, err := NewTwilioClient(TwilioOptions{
		AccountSID: "AC123",
		AuthToken:  "token",
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	})
	if err != nil {
		t.Fatalf("NewTwilioClient: %v", err)
	}

	sid, err := client.Send(context.Background(), "whatsapp:+14155238886", "whatsapp:+919876543210", "Thank you Asha")
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if sid != "SM1234567890" {
		t.Fatalf("unexpected sid: %q", sid)
	}
	if gotPath != "/2010-04-01/Accounts/AC123/Messages.json" {
		t.Fatalf("unexpected path: %q", gotPath)
	}
	if gotUser != "AC123" || gotPass != "token" {
		t.Fatalf("unexpected basic auth: %q / %q", gotUser, gotPass)
	}
	if gotFrom != "whatsapp:+14155238886" || gotTo != "whatsapp:+919876543210" {
		t.Fatalf("unexpected recipients: from=%q to=%q", gotFrom, gotTo)
	}
	if gotBody != "Thank you Asha" {
		t.Fatalf("unexpected body: %q", gotBody)
	}
}

func TestTwilioSendProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":20003,"message":"Authentication Error - invalid username"}`))
	}))
	defer srv.Close()

	client, err := NewTwilioClient(TwilioOptions{
		AccountSID: "AC123",
		AuthToken:  "bad",
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	})
	if err != nil {
		t.Fatalf("NewTwilioClient: %v", err)
	}

	_, err = client.Send(context.Background(), "whatsapp:+1", "whatsapp:+2", "hi")
	if err == nil {
		t.Fatal("expected provider error")
	}
	if !strings.Contains(err.Error(), "Authentication Error") {
		t.Fatalf("error missing provider message: %v", err)
	}
}

func TestTwilioSendMissingSID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client, err := NewTwilioClient(TwilioOptions{
		AccountSID: "AC123",
		AuthToken:  "token",
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	})
	if err != nil {
		t.Fatalf("NewTwilioClient: %v", err)
	}

	if _, err := client.Send(context.Background(), "a", "b", "c"); err == nil {
		t.Fatal("expected error for response without sid")
	}
}

package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/m-mizutani/gt"

	githubinfra "github.com/m-mizutani/iconpack/pkg/infra/github"
)

func TestClient_LatestRelease(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/repos/lucide-icons/lucide/releases/latest" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"tag_name": "0.460.0",
			"name": "Version 0.460.0",
			"html_url": "https://github.com/lucide-icons/lucide/releases/tag/0.460.0",
			"published_at": "2024-11-20T10:00:00Z"
		}`))
	}))
	defer server.Close()

	client, err := githubinfra.NewClient(
		githubinfra.WithBaseURL(server.URL),
		githubinfra.WithToken("test-token"),
	)
	gt.NoError(t, err)

	release, err := client.LatestRelease(context.Background(), "lucide-icons", "lucide")
	gt.NoError(t, err)
	gt.Value(t, release.TagName).Equal("0.460.0")
	gt.Value(t, release.ReleaseName).Equal("Version 0.460.0")
	gt.Value(t, release.Owner).Equal("lucide-icons")
	gt.Value(t, release.Repo).Equal("lucide")
	gt.Value(t, release.URL).Equal("https://github.com/lucide-icons/lucide/releases/tag/0.460.0")
	gt.Value(t, release.PublishedAt.Year()).Equal(2024)
	gt.Value(t, gotAuth).Equal("Bearer test-token")
}

func TestClient_LatestRelease_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Not Found"}`))
	}))
	defer server.Close()

	client, err := githubinfra.NewClient(githubinfra.WithBaseURL(server.URL + "/"))
	gt.NoError(t, err)

	_, err = client.LatestRelease(context.Background(), "nobody", "nothing")
	gt.Error(t, err)
}

func TestClient_LatestRelease_WithRealAPI(t *testing.T) {
	token := os.Getenv("TEST_GITHUB_TOKEN")
	if token == "" {
		t.Skip("TEST_GITHUB_TOKEN is not set")
	}

	client, err := githubinfra.NewClient(githubinfra.WithToken(token))
	gt.NoError(t, err)

	release, err := client.LatestRelease(context.Background(), "phosphor-icons", "core")
	gt.NoError(t, err)
	gt.Value(t, release.TagName).NotEqual("")
}

// Command httpdemo performs one HTTP exchange over a raw TCP socket and
// prints both the request that went over the wire and the parsed response,
// to show what an HTTP client library does under the hood.
//
// With -compare the same exchange is repeated through resty so the raw and
// library results can be placed side by side. With -demo it instead drives
// a short CRUD session against a running API server via the typed client.
package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mpetrashin/go-web-fundamentals/internal/apiclient"
	"github.com/mpetrashin/go-web-fundamentals/internal/logger"
	"github.com/mpetrashin/go-web-fundamentals/internal/rawhttp"
	"github.com/mpetrashin/go-web-fundamentals/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// headerFlags collects repeatable -header "Key: Value" arguments.
type headerFlags map[string]string

func (h headerFlags) String() string {
	pairs := make([]string, 0, len(h))
	for k, v := range h {
		pairs = append(pairs, k+": "+v)
	}
	return strings.Join(pairs, "; ")
}

func (h headerFlags) Set(value string) error {
	key, val, found := strings.Cut(value, ":")
	if !found {
		return fmt.Errorf("header must look like 'Key: Value', got %q", value)
	}
	h[strings.TrimSpace(key)] = strings.TrimSpace(val)
	return nil
}

func main() {
	printBuildInfo()

	var (
		targetURL = flag.String("url", "http://example.com/", "target URL")
		method    = flag.String("method", "GET", "HTTP method")
		body      = flag.String("body", "", "request body")
		compare   = flag.Bool("compare", false, "repeat the exchange through resty and print both results")
		demo      = flag.Bool("demo", false, "run a CRUD session against the API server at -url instead of a raw exchange")
		headers   = headerFlags{}
	)
	flag.Var(headers, "header", "extra request header as 'Key: Value' (repeatable)")
	flag.Parse()

	log := logger.NewLogger("http-demo")
	ctx := context.Background()

	if *demo {
		if err := runCRUDDemo(ctx, *targetURL, log); err != nil {
			log.Fatal().Err(err).Msg("crud demo failed")
		}
		return
	}

	req := rawhttp.Request{
		URL:     *targetURL,
		Method:  strings.ToUpper(*method),
		Headers: headers,
		Body:    *body,
	}

	fmt.Println("=== Raw request ===")
	fmt.Print(rawhttp.BuildRequest(req, hostLabel(*targetURL)))

	raw, err := rawhttp.Do(ctx, req)
	if err != nil {
		log.Fatal().Err(err).Msg("raw exchange failed")
	}

	fmt.Println("=== Raw response ===")
	fmt.Println(raw)

	resp, err := rawhttp.Parse(raw)
	if err != nil {
		log.Fatal().Err(err).Msg("response parsing failed")
	}

	fmt.Println("=== Parsed ===")
	fmt.Printf("Protocol: %s\n", resp.Protocol)
	fmt.Printf("Status:   %d %s\n", resp.StatusCode, resp.StatusMessage)
	for key, value := range resp.Headers {
		fmt.Printf("Header:   %s: %s\n", key, value)
	}
	fmt.Printf("Body:     %s\n", resp.Body)

	if *compare {
		if err = runLibraryComparison(ctx, req); err != nil {
			log.Fatal().Err(err).Msg("library comparison failed")
		}
	}
}

// hostLabel extracts the host part for display; BuildRequest does its own
// resolution when the request is actually sent.
func hostLabel(rawURL string) string {
	rest := rawURL
	if _, after, found := strings.Cut(rawURL, "://"); found {
		rest = after
	}
	host, _, _ := strings.Cut(rest, "/")
	return host
}

// runLibraryComparison performs the same exchange through resty. The status
// and headers should match the raw exchange; the point of the comparison is
// how little code it takes.
func runLibraryComparison(ctx context.Context, req rawhttp.Request) error {
	cli := resty.New().SetTimeout(30 * time.Second)

	r := cli.R().SetContext(ctx)
	for key, value := range req.Headers {
		r.SetHeader(key, value)
	}
	if req.Body != "" {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		return fmt.Errorf("resty exchange: %w", err)
	}

	fmt.Println("=== Library (resty) ===")
	fmt.Printf("Status:   %d %s\n", resp.StatusCode(), resp.Status())
	for key, values := range resp.Header() {
		fmt.Printf("Header:   %s: %s\n", key, strings.Join(values, ", "))
	}
	fmt.Printf("Body:     %s\n", resp.String())

	return nil
}

// runCRUDDemo walks the users/posts API: create a user, publish a post,
// list both, then clean up.
func runCRUDDemo(ctx context.Context, baseURL string, log *logger.Logger) error {
	client, err := apiclient.NewClient(apiclient.Config{
		BaseURL:    baseURL,
		PathPrefix: "/api",
		Timeout:    15 * time.Second,
	}, log)
	if err != nil {
		return err
	}

	user, err := client.CreateUser(ctx, models.CreateUserRequest{
		Name:  "Demo User",
		Email: fmt.Sprintf("demo-%d@example.com", time.Now().UnixNano()),
		Age:   25,
	})
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	fmt.Printf("created user id=%d name=%q\n", user.ID, user.Name)

	post, err := client.CreatePost(ctx, models.CreatePostRequest{
		Title:   "Hello over HTTP",
		Content: "Posted through the typed client.",
		UserID:  user.ID,
	})
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	fmt.Printf("created post id=%d author=%q\n", post.ID, post.Author)

	users, err := client.ListUsers(ctx, models.UserFilter{})
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	fmt.Printf("server has %d user(s)\n", users.Count)

	posts, err := client.ListPosts(ctx, models.PostFilter{UserID: user.ID})
	if err != nil {
		return fmt.Errorf("list posts: %w", err)
	}
	fmt.Printf("user %d has %d post(s)\n", user.ID, posts.Count)

	if err = client.DeletePost(ctx, post.ID); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if err = client.DeleteUser(ctx, user.ID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	fmt.Println("cleaned up demo records")

	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

// Package client is a typed Go client for the Snapgram HTTP API with a
// built-in feed cache. Mutating calls reconcile the local cache only
// after the server confirms the change, so the cache never drifts ahead
// of the backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"Snapgram/internal/client/feedstate"
	"Snapgram/internal/core/comments"
	"Snapgram/internal/core/posts"
)

// ErrEmptyPost is returned by CreatePost when neither a caption nor an
// image is given. Checked locally so an empty composer submit never
// reaches the server.
var ErrEmptyPost = errors.New("post needs a caption or an image")

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client talks to a Snapgram server and keeps the feed cache in sync.
// Session cookies are carried automatically via the jar.
type Client struct {
	baseURL string
	http    *http.Client
	feed    *feedstate.Store
	logger  *slog.Logger
}

// New creates a client for the given base URL, e.g. "https://api.example.com".
func New(baseURL string, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
		feed:   feedstate.NewStore(logger),
		logger: logger,
	}, nil
}

// Feed returns the client's local feed cache.
func (c *Client) Feed() *feedstate.Store {
	return c.feed
}

type feedResponse struct {
	Message string        `json:"message"`
	Posts   []*posts.Post `json:"posts"`
	Success bool          `json:"success"`
}

// LoadFeed fetches the recent-posts feed and replaces the cache with it.
func (c *Client) LoadFeed(ctx context.Context, limit int) ([]posts.Post, error) {
	path := "/api/v1/post/all"
	if limit > 0 {
		path += fmt.Sprintf("?limit=%d", limit)
	}

	var resp feedResponse
	if err := c.do(ctx, http.MethodGet, path, nil, "", &resp); err != nil {
		return nil, err
	}

	feed := make([]posts.Post, 0, len(resp.Posts))
	for _, p := range resp.Posts {
		if p != nil {
			feed = append(feed, *p)
		}
	}
	c.feed.Replace(feed)
	return feed, nil
}

type createPostResponse struct {
	Message string      `json:"message"`
	Post    *posts.Post `json:"post"`
	Success bool        `json:"success"`
}

// CreatePostInput is the content of a new post. Image is optional when
// a caption is given.
type CreatePostInput struct {
	Caption          string
	ImageName        string
	ImageContentType string
	ImageData        []byte
}

// CreatePost publishes a new post and prepends it to the cached feed.
// A fully empty post fails with ErrEmptyPost before any request is made.
func (c *Client) CreatePost(ctx context.Context, input CreatePostInput) (*posts.Post, error) {
	if strings.TrimSpace(input.Caption) == "" && len(input.ImageData) == 0 {
		return nil, ErrEmptyPost
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if err := mw.WriteField("caption", input.Caption); err != nil {
		return nil, fmt.Errorf("failed to write caption field: %w", err)
	}
	if len(input.ImageData) > 0 {
		header := make(map[string][]string)
		header["Content-Disposition"] = []string{
			fmt.Sprintf(`form-data; name="image"; filename="%s"`, input.ImageName),
		}
		if input.ImageContentType != "" {
			header["Content-Type"] = []string{input.ImageContentType}
		}
		part, err := mw.CreatePart(header)
		if err != nil {
			return nil, fmt.Errorf("failed to create image part: %w", err)
		}
		if _, err := part.Write(input.ImageData); err != nil {
			return nil, fmt.Errorf("failed to write image data: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	var resp createPostResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/post/addpost", &body, mw.FormDataContentType(), &resp); err != nil {
		return nil, err
	}
	if resp.Post == nil {
		return nil, fmt.Errorf("server returned no post")
	}

	c.feed.Prepend(*resp.Post)
	return resp.Post, nil
}

type likeResponse struct {
	Message string  `json:"message"`
	Likes   []int64 `json:"likes"`
	Count   int     `json:"count"`
	Success bool    `json:"success"`
}

// Like marks a post as liked and applies the confirmed liker list to the
// cache.
func (c *Client) Like(ctx context.Context, postID int64) ([]int64, error) {
	return c.sendLike(ctx, postID, "like")
}

// Unlike removes a like from a post.
func (c *Client) Unlike(ctx context.Context, postID int64) ([]int64, error) {
	return c.sendLike(ctx, postID, "dislike")
}

func (c *Client) sendLike(ctx context.Context, postID int64, action string) ([]int64, error) {
	var resp likeResponse
	path := fmt.Sprintf("/api/v1/post/%d/%s", postID, action)
	if err := c.do(ctx, http.MethodPost, path, nil, "", &resp); err != nil {
		return nil, err
	}
	c.feed.ApplyLikes(postID, resp.Likes)
	return resp.Likes, nil
}

type addCommentResponse struct {
	Message string            `json:"message"`
	Comment *comments.Comment `json:"comment"`
	Success bool              `json:"success"`
}

// AddComment posts a comment and appends it to the cached post.
func (c *Client) AddComment(ctx context.Context, postID int64, text string) (*comments.Comment, error) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, fmt.Errorf("failed to encode comment: %w", err)
	}

	var resp addCommentResponse
	path := fmt.Sprintf("/api/v1/post/%d/comment", postID)
	if err := c.do(ctx, http.MethodPost, path, bytes.NewReader(payload), "application/json", &resp); err != nil {
		return nil, err
	}
	if resp.Comment == nil {
		return nil, fmt.Errorf("server returned no comment")
	}

	c.feed.ApplyComment(postID, *resp.Comment)
	return resp.Comment, nil
}

type deleteResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// DeletePost removes one of the caller's posts and drops it from the cache.
func (c *Client) DeletePost(ctx context.Context, postID int64) error {
	var resp deleteResponse
	path := fmt.Sprintf("/api/v1/post/delete/%d", postID)
	if err := c.do(ctx, http.MethodDelete, path, nil, "", &resp); err != nil {
		return err
	}
	c.feed.Remove(postID)
	return nil
}

type bookmarkResponse struct {
	Message    string `json:"message"`
	Bookmarked bool   `json:"bookmarked"`
	Success    bool   `json:"success"`
}

// Bookmark toggles a bookmark on a post. Returns true when the post is
// now bookmarked.
func (c *Client) Bookmark(ctx context.Context, postID int64) (bool, error) {
	var resp bookmarkResponse
	path := fmt.Sprintf("/api/v1/post/%d/bookmark", postID)
	if err := c.do(ctx, http.MethodPost, path, nil, "", &resp); err != nil {
		return false, err
	}
	return resp.Bookmarked, nil
}

type followResponse struct {
	Message   string `json:"message"`
	Following bool   `json:"following"`
	Success   bool   `json:"success"`
}

// FollowOrUnfollow toggles following the given user. Returns true when
// the caller now follows them.
func (c *Client) FollowOrUnfollow(ctx context.Context, userID int64) (bool, error) {
	var resp followResponse
	path := fmt.Sprintf("/api/v1/user/followorunfollow/%d", userID)
	if err := c.do(ctx, http.MethodPost, path, nil, "", &resp); err != nil {
		return false, err
	}
	return resp.Following, nil
}

// do issues a request and decodes a JSON response into out. Non-2xx
// responses become an *APIError carrying the server's message.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("invalid request URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Message string `json:"message"`
		}
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		if err := json.Unmarshal(data, &apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

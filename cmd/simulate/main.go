// Command simulate drives a running TeamSync server with concurrent fake
// users: each one signs up, becomes a manager, creates a room, adds a task,
// posts a room message and private-messages the next user.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"mime/multipart"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	baseURL  = flag.String("base", "http://localhost:3000/api", "API base URL")
	numUsers = flag.Int("users", 10, "number of simulated users")
)

type client struct {
	http  *http.Client
	base  string
	token string
}

type simUser struct {
	email  string
	userID float64
	client *client
}

func (c *client) do(method, path string, body interface{}, out interface{}) error {
	var buf bytes.Buffer

	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequest(method, c.base+path, &buf)

	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	resp, err := c.http.Do(req)

	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		return fmt.Errorf("%s %s: %d %s", method, path, resp.StatusCode, errBody.Error)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}

	return nil
}

func (c *client) signup(email, username string) (float64, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	_ = form.WriteField("email", email)
	_ = form.WriteField("password", "password123")
	_ = form.WriteField("username", username)

	if err := form.Close(); err != nil {
		return 0, err
	}

	req, err := http.NewRequest(http.MethodPost, c.base+"/signup", &buf)

	if err != nil {
		return 0, err
	}

	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.http.Do(req)

	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var out struct {
		UserID float64 `json:"userId"`
		Token  string  `json:"token"`
		Error  string  `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, err
	}

	if resp.StatusCode >= 400 || out.Token == "" {
		return 0, fmt.Errorf("signup %s: %d %s", email, resp.StatusCode, out.Error)
	}

	c.token = out.Token
	return out.UserID, nil
}

func runUser(n int, users []simUser) error {
	u := users[n]

	var role struct {
		ReferralCode string `json:"referralCode"`
	}

	if err := u.client.do(http.MethodPost, "/set-role",
		map[string]string{"role": "manager"}, &role); err != nil {
		return err
	}

	var room struct {
		RoomID float64 `json:"roomId"`
	}

	roomName := fmt.Sprintf("room-%d-%d", n, rand.Intn(1000))

	if err := u.client.do(http.MethodPost, "/rooms",
		map[string]string{"name": roomName}, &room); err != nil {
		return err
	}

	roomPath := fmt.Sprintf("/rooms/%.0f", room.RoomID)

	if err := u.client.do(http.MethodPost, roomPath+"/tasks",
		map[string]string{"name": "first task"}, nil); err != nil {
		return err
	}

	if err := u.client.do(http.MethodPost, roomPath+"/messages",
		map[string]string{"content": "hello from " + u.email}, nil); err != nil {
		return err
	}

	if n+1 < len(users) {
		peer := users[n+1]
		path := fmt.Sprintf("/private-messages/%.0f", peer.userID)

		if err := u.client.do(http.MethodPost, path,
			map[string]string{"content": "psst, " + peer.email}, nil); err != nil {
			return err
		}
	}

	log.Printf("user %s done (room %q)", u.email, roomName)
	return nil
}

func main() {
	flag.Parse()

	httpClient := &http.Client{Timeout: 10 * time.Second}
	users := make([]simUser, *numUsers)

	// Signups run sequentially so every user can message the next one.
	for i := range users {
		c := &client{http: httpClient, base: *baseURL}
		email := fmt.Sprintf("sim-%d-%d@example.com", time.Now().UnixNano(), i)

		userID, err := c.signup(email, fmt.Sprintf("sim-user-%d", i))

		if err != nil {
			log.Fatalf("Signup failed: %v", err)
		}

		users[i] = simUser{email: email, userID: userID, client: c}
		log.Printf("signed up %s", email)
	}

	g, _ := errgroup.WithContext(context.Background())

	for i := range users {
		n := i
		g.Go(func() error { return runUser(n, users) })
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	log.Printf("Simulated %d users successfully", *numUsers)
}

// Package discord is a thin client for the two slices of the Discord REST API
// this service needs: the caller's own guild list (their OAuth bearer token)
// and privileged guild/member lookups (the bot token).
package discord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const DefaultAPIBase = "https://discord.com/api/v10"

var (
	ErrGuildNotFound  = errors.New("guild not found")
	ErrMemberNotFound = errors.New("guild member not found")
)

// Guild is one entry of the caller's /users/@me/guilds listing. Permissions
// is the caller's permission bitmask in that guild, as a decimal string.
type Guild struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Icon        *string  `json:"icon"`
	Owner       bool     `json:"owner"`
	Permissions string   `json:"permissions"`
	Features    []string `json:"features"`
}

// GuildDetail is the bot's-eye view of a guild; OwnerID is authoritative.
type GuildDetail struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Icon    *string `json:"icon"`
	OwnerID string  `json:"owner_id"`
}

type Member struct {
	Nick        *string  `json:"nick"`
	Roles       []string `json:"roles"`
	Permissions string   `json:"permissions"`
}

type Client struct {
	base     string
	botToken string
	http     *http.Client
}

func NewClient(base, botToken string, timeout time.Duration) *Client {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		base = DefaultAPIBase
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		base:     base,
		botToken: botToken,
		http:     &http.Client{Timeout: timeout},
	}
}

// UserGuilds lists the guilds the caller belongs to, using the caller's own
// access credential. This is the only call made with caller-supplied auth.
func (c *Client) UserGuilds(ctx context.Context, accessToken string) ([]Guild, error) {
	var guilds []Guild
	if err := c.get(ctx, "/users/@me/guilds", "Bearer "+accessToken, &guilds, nil); err != nil {
		return nil, err
	}
	return guilds, nil
}

func (c *Client) Guild(ctx context.Context, guildID string) (*GuildDetail, error) {
	var g GuildDetail
	if err := c.get(ctx, "/guilds/"+guildID, "Bot "+c.botToken, &g, ErrGuildNotFound); err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *Client) GuildMember(ctx context.Context, guildID, userID string) (*Member, error) {
	var m Member
	path := "/guilds/" + guildID + "/members/" + userID
	if err := c.get(ctx, path, "Bot "+c.botToken, &m, ErrMemberNotFound); err != nil {
		return nil, err
	}
	return &m, nil
}

// get runs one authenticated GET. A 404 maps to notFound when provided;
// every other non-2xx status is a transport-level failure.
func (c *Client) get(ctx context.Context, path, authorization string, out any, notFound error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", authorization)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound && notFound != nil {
		return notFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("discord api %s: %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

package github

import (
	"context"
	"encoding/json"
	"fmt"
)

// PerPage is the page size for repository listings.
const PerPage = 100

// ListOrgRepos returns the names of every repository in an
// organization, in API page order. It pages through
// /orgs/{org}/repos starting at page 1 and stops when the Link
// header carries no rel="next" entry, the sole termination
// condition. The list is complete or the call fails; no partial
// results are returned.
func (c *Client) ListOrgRepos(ctx context.Context, org string) ([]string, error) {
	var names []string

	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/orgs/%s/repos?type=all&per_page=%d&page=%d",
			c.baseURL, org, PerPage, page)

		resp, err := c.Get(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("list repos for %s: %w", org, err)
		}

		var repos []struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(resp.Body, &repos); err != nil {
			return nil, fmt.Errorf("list repos for %s: parse page %d: %w", org, page, err)
		}

		for _, r := range repos {
			if r.Name != "" {
				names = append(names, r.Name)
			}
		}

		if resp.NextPage == "" {
			break
		}
	}

	return names, nil
}

// Package github provides a rate-limit-aware client for the GitHub
// REST API, scoped to the organization repository listing endpoint.
//
// The package has three layers:
//
//   - RateLimiter: shared, mutex-guarded throttle combining a
//     proactive token bucket with reactive state from the
//     X-RateLimit-Remaining / X-RateLimit-Reset response headers.
//   - Client.Get: one logical GET with bounded retry and exponential
//     backoff on 403/429 rate limit signals. Other non-200 statuses
//     are permanent (*StatusError) and never retried.
//   - Client.ListOrgRepos: pages through /orgs/{org}/repos following
//     the Link rel="next" cursor and accumulates repository names in
//     response order.
//
// Example usage:
//
//	client := github.NewClient(token)
//	repos, err := client.ListOrgRepos(ctx, "my-org")
//	if err != nil {
//	    // fatal: a scan cannot proceed without the full listing
//	}
package github

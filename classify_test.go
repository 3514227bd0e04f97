package hublinks_test

import (
	"testing"

	"github.com/hublinks/hublinks"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		path  string
		query string
		kind  hublinks.PageKind
		label string
	}{
		{"pull requests", "/acme/widgets/pulls", "", hublinks.KindPullRequests, "Pull Requests"},
		{"pull requests with query", "/acme/widgets/pulls", "q=is%3Aopen", hublinks.KindPullRequests, "Pull Requests"},
		{"issues", "/acme/widgets/issues", "", hublinks.KindIssues, "Issues"},
		{"milestones list", "/acme/widgets/milestones", "", hublinks.KindMilestones, "Milestones"},
		{"single milestone wins over list rule", "/acme/widgets/milestone/7", "", hublinks.KindMilestone, "Milestone"},
		{"releases", "/acme/widgets/releases", "", hublinks.KindReleases, "Releases"},
		{"tags", "/acme/widgets/tags", "", hublinks.KindTags, "Tags"},
		{"branches", "/acme/widgets/branches", "", hublinks.KindBranches, "Branches"},
		{"discussions", "/acme/widgets/discussions", "", hublinks.KindDiscussions, "Discussions"},
		{"commits", "/acme/widgets/commits/main", "", hublinks.KindCommits, "Commits"},
		{"workflow runs", "/acme/widgets/actions", "", hublinks.KindActions, "Workflow Runs"},
		{"repo packages", "/acme/widgets/packages", "", hublinks.KindPackages, "Packages"},
		{"org packages", "/orgs/acme/packages", "", hublinks.KindPackages, "Packages"},
		{"org repositories", "/orgs/acme/repositories", "", hublinks.KindRepositories, "Repositories"},
		{"profile repositories tab", "/acme", "tab=repositories", hublinks.KindRepositories, "Repositories"},
		{"search routes to generic", "/search", "q=widgets&type=repositories", hublinks.KindNone, "Search Results"},
		{"unknown page routes to generic", "/acme/widgets/wiki", "", hublinks.KindNone, "Items"},
		{"root path", "/", "", hublinks.KindNone, "Items"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := hublinks.Classify(tt.path, tt.query)
			assert.Equal(t, tt.kind, c.Kind)
			assert.Equal(t, tt.label, c.Label)
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	t.Parallel()

	first := hublinks.Classify("/acme/widgets/milestone/7", "")
	second := hublinks.Classify("/acme/widgets/milestone/7", "")
	assert.Equal(t, first, second)
}

func TestParseRepoContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		path  string
		owner string
		repo  string
	}{
		{"owner and repo", "/acme/widgets/pulls", "acme", "widgets"},
		{"owner only", "/acme", "acme", ""},
		{"root", "/", "", ""},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rc := hublinks.ParseRepoContext(tt.path)
			assert.Equal(t, tt.owner, rc.Owner)
			assert.Equal(t, tt.repo, rc.Repo)
		})
	}
}

func TestParseItemNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"pull request", "/acme/widgets/pull/42", "#42"},
		{"issue", "/acme/widgets/issues/1337", "#1337"},
		{"issue with trailing segment", "/acme/widgets/issues/7/comments", "#7"},
		{"release is not numbered", "/acme/widgets/releases/tag/v1.0.0", ""},
		{"issues list is not numbered", "/acme/widgets/issues", ""},
		{"non-numeric id", "/acme/widgets/pull/abc", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, hublinks.ParseItemNumber(tt.path))
		})
	}
}

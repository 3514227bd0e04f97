package hublinks

import (
	"regexp"
	"strings"
)

// PageKind is a category tag selecting which selector set applies to a page.
type PageKind string

// Page categories with dedicated selector sets.
//
// KindNone means "no specific kind": the page routes directly to generic
// extraction. KindGeneric marks results produced by the generic fallback.
const (
	KindNone         PageKind = ""
	KindGeneric      PageKind = "generic"
	KindPullRequests PageKind = "pulls"
	KindIssues       PageKind = "issues"
	KindMilestone    PageKind = "milestone"
	KindMilestones   PageKind = "milestones"
	KindRepositories PageKind = "repositories"
	KindReleases     PageKind = "releases"
	KindTags         PageKind = "tags"
	KindBranches     PageKind = "branches"
	KindDiscussions  PageKind = "discussions"
	KindCommits      PageKind = "commits"
	KindActions      PageKind = "actions"
	KindPackages     PageKind = "packages"
	KindGists        PageKind = "gists"
)

// Classification is the outcome of matching a location against the rule table.
type Classification struct {
	Kind  PageKind
	Label string
}

// PageRule maps a location shape to a page kind and display label.
// Rules are evaluated in order; the first match wins.
type PageRule struct {
	Pattern *regexp.Regexp
	Kind    PageKind
	Label   string
}

// pageRules encodes specificity through ordering: narrow shapes (a single
// milestone by id) precede broad ones (the milestones list) so a broad
// pattern never shadows a more accurate one. Search resolves to KindNone on
// purpose: search result layouts change too often for a curated selector
// set, so they route straight to generic extraction.
var pageRules = []PageRule{
	{regexp.MustCompile(`^/[^/]+/[^/]+/pulls`), KindPullRequests, "Pull Requests"},
	{regexp.MustCompile(`^/[^/]+/[^/]+/issues`), KindIssues, "Issues"},
	{regexp.MustCompile(`^/[^/]+/[^/]+/milestone/\d+`), KindMilestone, "Milestone"},
	{regexp.MustCompile(`^/[^/]+/[^/]+/milestones`), KindMilestones, "Milestones"},
	{regexp.MustCompile(`^/[^/]+/[^/]+/releases`), KindReleases, "Releases"},
	{regexp.MustCompile(`^/[^/]+/[^/]+/tags`), KindTags, "Tags"},
	{regexp.MustCompile(`^/[^/]+/[^/]+/branches`), KindBranches, "Branches"},
	{regexp.MustCompile(`^/[^/]+/[^/]+/discussions`), KindDiscussions, "Discussions"},
	{regexp.MustCompile(`^/[^/]+/[^/]+/commits`), KindCommits, "Commits"},
	{regexp.MustCompile(`^/[^/]+/[^/]+/actions`), KindActions, "Workflow Runs"},
	{regexp.MustCompile(`^/orgs/[^/]+/packages|^/[^/]+/[^/]+/packages`), KindPackages, "Packages"},
	{regexp.MustCompile(`^/orgs/[^/]+/repositories|\?(?:.*&)?tab=repositories`), KindRepositories, "Repositories"},
	{regexp.MustCompile(`^/search`), KindNone, "Search Results"},
}

// Classify matches the location's path and query against the rule table and
// returns the first matching rule's kind and label. An unmatched location
// returns (KindNone, "Items"), meaning "run generic extraction"; it is not
// an error.
func Classify(path string, query string) Classification {
	loc := path
	if query != "" {
		loc += "?" + query
	}
	for _, rule := range pageRules {
		if rule.Pattern.MatchString(loc) {
			return Classification{Kind: rule.Kind, Label: rule.Label}
		}
	}
	return Classification{Kind: KindNone, Label: "Items"}
}

// ParseRepoContext reads the owner and repository name from the first two
// path segments. Fields are empty when the path is shorter.
func ParseRepoContext(path string) RepoContext {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	var rc RepoContext
	if len(segments) > 0 {
		rc.Owner = segments[0]
	}
	if len(segments) > 1 {
		rc.Repo = segments[1]
	}
	return rc
}

// itemNumberPattern matches pull request and issue paths with an integer id.
var itemNumberPattern = regexp.MustCompile(`/(?:pull|issues)/(\d+)(?:[/?#]|$)`)

// ParseItemNumber returns the "#<digits>" label for pull request and issue
// paths, or "" for every other shape.
func ParseItemNumber(path string) string {
	m := itemNumberPattern.FindStringSubmatch(path)
	if m == nil {
		return ""
	}
	return "#" + m[1]
}

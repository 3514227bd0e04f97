package goquery

import (
	"regexp"

	"github.com/hublinks/hublinks"
)

// Compile-time interface verification.
var _ hublinks.ItemSelector = (*SpecSelector)(nil)

// SpecSelector applies one category's Spec through the link collector.
// It holds no logic of its own beyond delegation; the per-category value is
// the curated selector data, which should be treated as replaceable
// configuration rather than code.
type SpecSelector struct {
	kind hublinks.PageKind
	spec Spec
}

// NewSpecSelector creates a selector for a page category.
func NewSpecSelector(kind hublinks.PageKind, spec Spec) *SpecSelector {
	return &SpecSelector{kind: kind, spec: spec}
}

// Kind returns the page category this selector is tuned for.
func (s *SpecSelector) Kind() hublinks.PageKind {
	return s.kind
}

// ExtractItems parses HTML and returns the extracted items in document
// order, deduplicated by resolved URL.
func (s *SpecSelector) ExtractItems(html string, pageURL string) ([]hublinks.Item, error) {
	doc, base, err := parseDocument(html, pageURL)
	if err != nil {
		return nil, err
	}
	c := newCollector(base)
	c.collect(doc, s.spec)
	return c.items, nil
}

// Selector specs per page category. Each category lists several structural
// conventions because GitHub's markup has changed over time and multiple
// generations coexist: legacy js-navigation rows, Primer Box-row markup,
// and the React list views with data-testid attributes.
var (
	pullsSpec = Spec{
		Selectors: []string{
			`a[data-testid="issue-pr-title-link"]`,
			`.js-issue-row a.js-navigation-open`,
			`.js-issue-row a.Link--primary`,
			`a[data-hovercard-type="pull_request"]`,
		},
		URLFilter: regexp.MustCompile(`/pull/\d+`),
	}

	issuesSpec = Spec{
		Selectors: []string{
			`a[data-testid="issue-pr-title-link"]`,
			`.js-issue-row a.js-navigation-open`,
			`.js-issue-row a.Link--primary`,
			`a[data-hovercard-type="issue"]`,
		},
		URLFilter: regexp.MustCompile(`/issues/\d+`),
	}

	// A single milestone page lists the issues and pull requests assigned
	// to it, so it reuses the issue row conventions with a wider filter.
	milestoneSpec = Spec{
		Selectors: []string{
			`a[data-testid="issue-pr-title-link"]`,
			`.js-issue-row a.js-navigation-open`,
			`.js-issue-row a.Link--primary`,
			`a[data-hovercard-type="issue"]`,
			`a[data-hovercard-type="pull_request"]`,
		},
		URLFilter: regexp.MustCompile(`/(?:issues|pull)/\d+`),
	}

	milestonesSpec = Spec{
		Selectors: []string{
			`.milestone-title-link a`,
			`.js-milestone-row a.Link--primary`,
			`a[href*="/milestone/"]`,
		},
		URLFilter: regexp.MustCompile(`/milestone/\d+`),
	}

	repositoriesSpec = Spec{
		Selectors: []string{
			`a[itemprop="name codeRepository"]`,
			`.repo-list-item h3 a`,
			`li[data-testid="repos-list-item"] a[href]`,
			`.user-repo-search-results-summary ~ div h3 a`,
		},
	}

	releasesSpec = Spec{
		Selectors: []string{
			`.release-entry a.Link--primary`,
			`section[aria-labelledby] h2 a`,
			`a[href*="/releases/tag/"]`,
		},
		URLFilter: regexp.MustCompile(`/releases/tag/`),
	}

	tagsSpec = Spec{
		Selectors: []string{
			`.Box-row a.Link--primary[href*="/releases/tag/"]`,
			`a[href*="/releases/tag/"]`,
		},
		URLFilter: regexp.MustCompile(`/releases/tag/`),
	}

	branchesSpec = Spec{
		Selectors: []string{
			`a.branch-name`,
			`[data-testid="branch-name-cell"] a`,
			`.Box-row a[href*="/tree/"]`,
		},
		URLFilter: regexp.MustCompile(`/tree/`),
	}

	discussionsSpec = Spec{
		Selectors: []string{
			`a[data-hovercard-type="discussion"]`,
			`.js-discussion-row a.Link--primary`,
			`a[href*="/discussions/"]`,
		},
		URLFilter: regexp.MustCompile(`/discussions/\d+`),
	}

	commitsSpec = Spec{
		Selectors: []string{
			`li[data-testid="commit-row-item"] a[href*="/commit/"]`,
			`.js-commits-list-item a.markdown-title`,
			`a.markdown-title[href*="/commit/"]`,
		},
		URLFilter: regexp.MustCompile(`/commit/[0-9a-f]+`),
	}

	actionsSpec = Spec{
		Selectors: []string{
			`a[data-testid="workflow-run-title"]`,
			`.Box-row a.Link--primary[href*="/actions/runs/"]`,
			`a[href*="/actions/runs/"]`,
		},
		URLFilter: regexp.MustCompile(`/actions/runs/\d+`),
	}

	packagesSpec = Spec{
		Selectors: []string{
			`.Box-row .flex-auto a.Link--primary`,
			`a[href*="/packages/"]`,
		},
		URLFilter: regexp.MustCompile(`/packages?/`),
	}

	gistsSpec = Spec{
		Selectors: []string{
			`.gist-snippet a[href]`,
			`a.css-truncate-target[href]`,
		},
		// Gist paths end in a long hex id.
		URLFilter: regexp.MustCompile(`/[0-9a-f]{20,}`),
	}
)

// DefaultRegistry returns a registry with every category selector
// registered in category order. The order matters: it is the order the
// orchestrator's exhaustive retry walks when the classified category
// yields nothing.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(hublinks.KindPullRequests, NewSpecSelector(hublinks.KindPullRequests, pullsSpec))
	r.Register(hublinks.KindIssues, NewSpecSelector(hublinks.KindIssues, issuesSpec))
	r.Register(hublinks.KindMilestone, NewSpecSelector(hublinks.KindMilestone, milestoneSpec))
	r.Register(hublinks.KindMilestones, NewSpecSelector(hublinks.KindMilestones, milestonesSpec))
	r.Register(hublinks.KindRepositories, NewSpecSelector(hublinks.KindRepositories, repositoriesSpec))
	r.Register(hublinks.KindReleases, NewSpecSelector(hublinks.KindReleases, releasesSpec))
	r.Register(hublinks.KindTags, NewSpecSelector(hublinks.KindTags, tagsSpec))
	r.Register(hublinks.KindBranches, NewSpecSelector(hublinks.KindBranches, branchesSpec))
	r.Register(hublinks.KindDiscussions, NewSpecSelector(hublinks.KindDiscussions, discussionsSpec))
	r.Register(hublinks.KindCommits, NewSpecSelector(hublinks.KindCommits, commitsSpec))
	r.Register(hublinks.KindActions, NewSpecSelector(hublinks.KindActions, actionsSpec))
	r.Register(hublinks.KindPackages, NewSpecSelector(hublinks.KindPackages, packagesSpec))
	r.Register(hublinks.KindGists, NewSpecSelector(hublinks.KindGists, gistsSpec))
	return r
}

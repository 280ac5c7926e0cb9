package docs

import (
	"bufio"
	"os"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics extracts the topic list from readme.md. Each topic is a
// bullet of the form "* name: description".
func readmeTopics(t *testing.T) []string {
	t.Helper()
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topics []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			topics = append(topics, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	return topics
}

// TestTopics ensures the documentation stays in sync with itself: every
// topic listed in readme.md loads, and every topic file is listed.
func TestTopics(t *testing.T) {
	listed := readmeTopics(t)
	if len(listed) == 0 {
		t.Fatal("readme.md lists no topics")
	}

	for _, topic := range listed {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("topic %q is listed in readme.md but does not load: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q exists but is not listed in readme.md", topic)
		}
	}
}

// TestTopicsAreValidMarkdown parses every topic and checks each carries a
// level-one title, so the concatenated "*" output reads as separate
// documents.
func TestTopicsAreValidMarkdown(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	md := goldmark.New()
	for _, topic := range all {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatal(err)
		}
		source := []byte(content)
		root := md.Parser().Parse(text.NewReader(source))

		var hasTitle bool
		ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if h, ok := n.(*ast.Heading); ok && entering && h.Level == 1 {
				hasTitle = true
				return ast.WalkStop, nil
			}
			return ast.WalkContinue, nil
		})
		if !hasTitle {
			t.Errorf("topic %q has no level-one title", topic)
		}
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("unknown topic loaded without error")
	}
}

func TestGetTopicsStar(t *testing.T) {
	content, err := GetTopics("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# Expense Documents", "# Payroll Registers", "# Payment Checks"} {
		if !strings.Contains(content, want) {
			t.Errorf("star expansion missing %q", want)
		}
	}
}

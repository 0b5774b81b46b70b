package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text untouched",
			input: "hello world",
			want:  "hello world",
		},
		{
			name:  "tags removed",
			input: "<p>hello <strong>world</strong></p>",
			want:  "hello world",
		},
		{
			name:  "entities decoded",
			input: "a&nbsp;&amp;&nbsp;b &lt;ok&gt; &quot;q&quot; &#39;s&#39;",
			want:  `a & b <ok> "q" 's'`,
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  <div>  inner  </div>  ",
			want:  "inner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripHTML(tt.input))
		})
	}
}

func TestGenerateCommentApprovedEmail_EscapesUserContent(t *testing.T) {
	rendered := GenerateCommentApprovedEmail(
		`<script>alert("x")</script>`,
		"A Post",
		"a-post",
		`nice "post" <b>`,
		"https://voidd.space",
	)

	assert.NotContains(t, rendered.HTML, `<script>alert`)
	assert.Contains(t, rendered.HTML, "&lt;script&gt;")
	assert.NotContains(t, rendered.HTML, "<b>nice")
	assert.Contains(t, rendered.HTML, "https://voidd.space/blog/a-post")
}

func TestGenerateWelcomeEmail_HasUnsubscribeLink(t *testing.T) {
	rendered := GenerateWelcomeEmail("alice+tag@example.com", "https://voidd.space")

	// The address must survive URL encoding in the unsubscribe link.
	assert.Contains(t, rendered.HTML, "https://voidd.space/unsubscribe?email=alice%2Btag%40example.com")
	assert.Contains(t, rendered.Text, "alice%2Btag%40example.com")
	assert.Contains(t, rendered.Text, "Welcome to the Void")
}

func TestGenerateNewsletterEmail(t *testing.T) {
	post := NewsletterPost{
		Title:       "On Silence",
		Excerpt:     "Some thoughts about nothing.",
		Slug:        "on-silence",
		Author:      "Void Space",
		PublishedAt: "August 28, 2026",
	}

	rendered := GenerateNewsletterEmail("bob@example.com", post, "https://voidd.space")

	assert.Contains(t, rendered.HTML, "On Silence")
	assert.Contains(t, rendered.HTML, "https://voidd.space/blog/on-silence")
	assert.Contains(t, rendered.HTML, "bob%40example.com")
	assert.Contains(t, rendered.Text, "Read the post: https://voidd.space/blog/on-silence")
}

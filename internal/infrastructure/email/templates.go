package email

import (
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"
)

// Rendered is an html/text pair ready for EmailService.Send.
type Rendered struct {
	HTML string
	Text string
}

var (
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

	htmlEntities = strings.NewReplacer(
		"&nbsp;", " ",
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
	)
)

// StripHTML converts an HTML body to its plain-text fallback.
func StripHTML(s string) string {
	return strings.TrimSpace(htmlEntities.Replace(htmlTagPattern.ReplaceAllString(s, "")))
}

func unsubscribeURL(baseURL, email string) string {
	return fmt.Sprintf("%s/unsubscribe?email=%s", baseURL, url.QueryEscape(email))
}

const emailStyle = `font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;background-color:#0a0a0a;color:#d1d5db;max-width:600px;margin:0 auto;padding:32px;border-radius:20px`

// GenerateCommentApprovedEmail composes the notification sent to a guest
// commenter after their comment passes moderation.
func GenerateCommentApprovedEmail(guestName, postTitle, postSlug, content, baseURL string) Rendered {
	postURL := fmt.Sprintf("%s/blog/%s", baseURL, postSlug)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<body style="background-color:#f8fafc;padding:40px 20px;">
  <div style="%s">
    <h1 style="color:#ffffff;font-weight:300;">Your comment is <span style="color:#4a9eff;">live</span></h1>
    <p>Hi %s,</p>
    <p>Your comment on <strong>%s</strong> has been approved and is now visible to other readers.</p>
    <blockquote style="border-left:4px solid #4a9eff;padding:16px;background-color:#111827;border-radius:12px;font-style:italic;">%s</blockquote>
    <p style="text-align:center;margin:32px 0;">
      <a href="%s" style="background:linear-gradient(135deg,#4a9eff,#60a5fa);color:#ffffff;text-decoration:none;padding:14px 28px;border-radius:12px;font-weight:600;">View the conversation</a>
    </p>
    <p style="color:#6b7280;font-size:14px;">You received this one-time notification because you left your email with your comment.</p>
  </div>
</body>
</html>`,
		emailStyle,
		html.EscapeString(guestName),
		html.EscapeString(postTitle),
		html.EscapeString(content),
		postURL,
	)

	text := fmt.Sprintf(
		"Hi %s,\n\nYour comment on \"%s\" has been approved and is now visible to other readers.\n\n> %s\n\nView the conversation: %s\n",
		guestName, postTitle, content, postURL,
	)

	return Rendered{HTML: htmlBody, Text: text}
}

// GenerateWelcomeEmail composes the newsletter welcome message.
func GenerateWelcomeEmail(email, baseURL string) Rendered {
	unsub := unsubscribeURL(baseURL, email)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<body style="background-color:#f8fafc;padding:40px 20px;">
  <div style="%s">
    <h1 style="color:#ffffff;font-weight:300;">Welcome to the <span style="color:#4a9eff;">Void</span></h1>
    <p>You are now subscribed. Whenever something new surfaces here, it will find its way to your inbox. No noise in between.</p>
    <p style="text-align:center;margin:32px 0;">
      <a href="%s/blog" style="background:linear-gradient(135deg,#4a9eff,#60a5fa);color:#ffffff;text-decoration:none;padding:14px 28px;border-radius:12px;font-weight:600;">Start reading</a>
    </p>
    <p style="color:#6b7280;font-size:14px;">Changed your mind? <a href="%s" style="color:#4a9eff;">Unsubscribe</a> any time.</p>
  </div>
</body>
</html>`, emailStyle, baseURL, unsub)

	text := fmt.Sprintf(
		"Welcome to the Void.\n\nYou are now subscribed. Whenever something new surfaces here, it will find its way to your inbox.\n\nStart reading: %s/blog\nUnsubscribe: %s\n",
		baseURL, unsub,
	)

	return Rendered{HTML: htmlBody, Text: text}
}

// NewsletterPost is the slice of a post that campaign emails need.
type NewsletterPost struct {
	Title       string
	Excerpt     string
	Slug        string
	Author      string
	PublishedAt string
}

// GenerateNewsletterEmail composes the new-post campaign message for one
// subscriber, with their personal unsubscribe link in the footer.
func GenerateNewsletterEmail(subscriberEmail string, post NewsletterPost, baseURL string) Rendered {
	postURL := fmt.Sprintf("%s/blog/%s", baseURL, post.Slug)
	unsub := unsubscribeURL(baseURL, subscriberEmail)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<body style="background-color:#f8fafc;padding:40px 20px;">
  <div style="%s">
    <p style="color:#6b7280;font-size:14px;">New from Void Space</p>
    <h1 style="color:#ffffff;font-weight:300;">%s</h1>
    <p>%s</p>
    <p style="text-align:center;margin:32px 0;">
      <a href="%s" style="background:linear-gradient(135deg,#4a9eff,#60a5fa);color:#ffffff;text-decoration:none;padding:14px 28px;border-radius:12px;font-weight:600;">Read the post</a>
    </p>
    <p style="color:#6b7280;font-size:14px;">by %s · %s</p>
    <p style="color:#6b7280;font-size:14px;"><a href="%s" style="color:#4a9eff;">Unsubscribe</a></p>
  </div>
</body>
</html>`,
		emailStyle,
		html.EscapeString(post.Title),
		html.EscapeString(post.Excerpt),
		postURL,
		html.EscapeString(post.Author),
		html.EscapeString(post.PublishedAt),
		unsub,
	)

	text := fmt.Sprintf(
		"New from Void Space: %s\n\n%s\n\nRead the post: %s\n\nby %s - %s\nUnsubscribe: %s\n",
		post.Title, post.Excerpt, postURL, post.Author, post.PublishedAt, unsub,
	)

	return Rendered{HTML: htmlBody, Text: text}
}

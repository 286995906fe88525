// Package markdown converts document sources to HTML with goldmark. Front
// matter splitting is opt-in.
package markdown

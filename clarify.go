// Package clarify lets a user chat with an assistant about the page they
// are reading and have the assistant bring a relevant passage into view.
//
// The heart of the module is the content locator: given free-form text it
// finds the best-matching visible passage in a rendered document, highlights
// it and smooth-scrolls it to the middle of the viewport.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, gemini/).
package clarify

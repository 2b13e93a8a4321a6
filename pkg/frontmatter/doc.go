// Package frontmatter handles the YAML metadata block at the top of
// the site's markdown pages.
//
// Two access levels are provided. [Split] returns the raw delimiter
// block untouched alongside the body, for transforms that must re-emit
// a page byte-for-byte except where they intend changes. [Parse]
// decodes the block into a typed struct for commands that read
// metadata (titles, nav order). [Format] is the inverse of Parse.
package frontmatter

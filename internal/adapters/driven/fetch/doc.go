// Package fetch provides the driven adapters that obtain raw publications:
// an HTTP fetcher with proactive throttling and a pdftotext based text
// extractor for the weekly PDF menus of the text sources.
package fetch

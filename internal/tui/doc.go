// Package tui is the terminal rendition of the portfolio.
//
// Three tabs mirror the web views:
//   - About: the typing hero, skills and the timelines, which reveal as
//     they scroll into the pager (j/k)
//   - Projects: technology chips (h/l, space) over a project list (j/k);
//     enter opens the carousel, whose tiles settle one by one
//   - Contact: outbound links
//
// Keys 1, 2 and 3 switch tabs; q or ctrl+c quits.
package tui

// Package interactive drives a recommendation session over a line-oriented
// terminal.
//
// A Prompter collects Preferences by asking one question per line and
// re-asking until the answer is usable or skipped. A Session presents the
// recommendation window, asks which titles were already seen, and relays the
// window's events back to the viewer until they are done or input ends.
package interactive

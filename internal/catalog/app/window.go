package app

const maxPageButtons = 5

// Window describes which page buttons a pager renders: a run of
// numbered buttons centered on the current page, optionally bracketed
// by the first/last page with an ellipsis gap when the page count
// exceeds the button budget.
type Window struct {
	Pages       []int
	ShowFirst   bool
	LeadingGap  bool
	ShowLast    bool
	TrailingGap bool
}

func PageWindow(current, total int) Window {
	if total <= 1 {
		return Window{}
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	start := current - maxPageButtons/2
	if start < 1 {
		start = 1
	}
	end := start + maxPageButtons - 1
	if end > total {
		end = total
		if s := end - maxPageButtons + 1; s > 1 {
			start = s
		} else {
			start = 1
		}
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}

	w := Window{Pages: pages}
	if total > maxPageButtons {
		if current > 2 {
			w.ShowFirst = true
			w.LeadingGap = current > 3
		}
		if current < total-1 {
			w.ShowLast = true
			w.TrailingGap = current < total-2
		}
	}
	return w
}

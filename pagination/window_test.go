package pagination

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestWindow(t *testing.T) {
	Convey("Window", t, func() {
		Convey("Should center on the current page", func() {
			So(Window(7, 10, 5), ShouldResemble, []int{5, 6, 7, 8, 9})
		})

		Convey("Should shrink to the collection", func() {
			So(Window(1, 3, 5), ShouldResemble, []int{1, 2, 3})
		})

		Convey("Should slide at both edges", func() {
			So(Window(1, 10, 5), ShouldResemble, []int{1, 2, 3, 4, 5})
			So(Window(10, 10, 5), ShouldResemble, []int{6, 7, 8, 9, 10})
			So(Window(9, 10, 4), ShouldResemble, []int{7, 8, 9, 10})
		})

		Convey("Should be empty without records", func() {
			So(Window(1, 0, 5), ShouldBeEmpty)
		})

		Convey("Should hold for every small input", func() {
			for total := 0; total <= 30; total++ {
				for maxSize := 1; maxSize <= 9; maxSize++ {
					for current := 1; current <= max(total, 1); current++ {
						w := Window(current, total, maxSize)

						So(w, ShouldHaveLength, min(maxSize, total))
						for i, page := range w {
							So(page, ShouldBeBetweenOrEqual, 1, total)
							if i > 0 {
								So(page, ShouldEqual, w[i-1]+1)
							}
						}
						if total > 0 {
							So(w, ShouldContain, current)
						}
					}
				}
			}
		})
	})
}

package seniority_test

import (
	"testing"

	seniority "github.com/adrata/monaco/internal/domain/seniority"
	. "github.com/smartystreets/goconvey/convey"
)

func TestScore(t *testing.T) {
	Convey("Given the title scoring rules", t, func() {
		Convey("When scoring executive titles", func() {
			So(seniority.Score("CEO"), ShouldEqual, 10)
			So(seniority.Score("Chief Executive Officer"), ShouldEqual, 10)
			So(seniority.Score("President"), ShouldEqual, 10)
			So(seniority.Score("CFO"), ShouldEqual, 9)
			So(seniority.Score("CTO"), ShouldEqual, 9)
			So(seniority.Score("COO"), ShouldEqual, 9)
		})

		Convey("When scoring leadership titles", func() {
			So(seniority.Score("VP of Sales"), ShouldEqual, 8)
			So(seniority.Score("Vice President, Engineering"), ShouldEqual, 8)
			So(seniority.Score("Director of Operations"), ShouldEqual, 7)
			So(seniority.Score("Head of Product"), ShouldEqual, 6)
			So(seniority.Score("Chief of Staff"), ShouldEqual, 6)
		})

		Convey("When scoring management and senior IC titles", func() {
			So(seniority.Score("Sales Manager"), ShouldEqual, 5)
			So(seniority.Score("Tech Lead"), ShouldEqual, 4)
			So(seniority.Score("Senior Engineer"), ShouldEqual, 4)
		})

		Convey("When scoring unknown titles", func() {
			So(seniority.Score("Accountant"), ShouldEqual, 3)
			So(seniority.Score(""), ShouldEqual, 3)
		})

		Convey("When titles contain more than one keyword", func() {
			Convey("Then the most specific rule wins", func() {
				// "Senior Director" hits the director rule before the senior rule
				So(seniority.Score("Senior Director"), ShouldEqual, 7)
				// "VP of Engineering" hits the vp rule before anything else
				So(seniority.Score("VP of Engineering"), ShouldEqual, 8)
			})
		})

		Convey("When acronyms hide inside longer words", func() {
			// "coo" inside coordinator and "cto" inside doctor are not matches
			So(seniority.Score("Coordinator"), ShouldEqual, 3)
			So(seniority.Score("Project Coordinator"), ShouldEqual, 3)
			So(seniority.Score("Doctor"), ShouldEqual, 3)
			So(seniority.Score("Senior Vice President"), ShouldEqual, 8)
		})

		Convey("When matching is case-insensitive", func() {
			So(seniority.Score("ceo"), ShouldEqual, seniority.Score("CEO"))
			So(seniority.Score("vice president of sales"), ShouldEqual, 8)
		})
	})
}

func TestLevel(t *testing.T) {
	Convey("Given the seniority level labels", t, func() {
		So(seniority.Level("CEO"), ShouldEqual, "Executive")
		So(seniority.Level("CTO"), ShouldEqual, "Executive")
		So(seniority.Level("VP of Sales"), ShouldEqual, "Senior Leadership")
		So(seniority.Level("Director of Marketing"), ShouldEqual, "Senior Leadership")
		So(seniority.Level("Head of Design"), ShouldEqual, "Senior Leadership")
		So(seniority.Level("Operations Manager"), ShouldEqual, "Mid-Level Management")
		So(seniority.Level("Senior Analyst"), ShouldEqual, "Mid-Level Management")
		So(seniority.Level("Account Coordinator"), ShouldEqual, "Individual Contributor")
	})
}

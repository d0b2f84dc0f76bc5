package eligibility_test

import (
	"testing"

	eligibility "github.com/adrata/monaco/internal/domain/eligibility"
	"github.com/adrata/monaco/internal/domain/model"
	"github.com/adrata/monaco/internal/domain/tier"
	. "github.com/smartystreets/goconvey/convey"
)

func floatPtr(v float64) *float64 { return &v }

func midMarketQualifier(dealSize float64) *eligibility.Qualifier {
	return eligibility.New(dealSize, tier.Thresholds{VP: 100_000, Director: 50_000, Manager: 25_000})
}

func TestIsDecisionMaker(t *testing.T) {
	Convey("Given a mid-market deal qualifier", t, func() {
		q := midMarketQualifier(60_000)

		Convey("Founder-class titles always qualify", func() {
			So(q.IsDecisionMaker("CEO", "", nil), ShouldBeTrue)
			So(q.IsDecisionMaker("Founder", "", nil), ShouldBeTrue)
			So(q.IsDecisionMaker("President", "", nil), ShouldBeTrue)
			So(q.IsDecisionMaker("Owner", "", nil), ShouldBeTrue)
		})

		Convey("Other C-level titles qualify when signals allow", func() {
			So(q.IsDecisionMaker("CFO", "Finance", nil), ShouldBeTrue)
			So(q.IsDecisionMaker("CTO", "Engineering", nil), ShouldBeTrue)

			Convey("But low relevance blocks them", func() {
				c := &model.Candidate{Relevance: floatPtr(0.1)}
				So(q.IsDecisionMaker("CFO", "Finance", c), ShouldBeFalse)
			})

			Convey("And low department fit blocks them", func() {
				c := &model.Candidate{Scores: model.Scores{DepartmentFit: floatPtr(2)}}
				So(q.IsDecisionMaker("COO", "Operations", c), ShouldBeFalse)
			})

			Convey("While strong signals pass", func() {
				c := &model.Candidate{
					Relevance: floatPtr(0.8),
					Scores:    model.Scores{DepartmentFit: floatPtr(8)},
				}
				So(q.IsDecisionMaker("CTO", "Engineering", c), ShouldBeTrue)
			})
		})

		Convey("Customer success executives do not own budget", func() {
			So(q.IsDecisionMaker("Chief Customer Officer", "Customer Success", nil), ShouldBeFalse)

			Convey("Unless the title carries revenue language", func() {
				So(q.IsDecisionMaker("Chief Revenue Officer", "Customer Success", nil), ShouldBeTrue)
			})
		})

		Convey("VP, director, and manager titles gate on deal size", func() {
			// deal 60k: below VP (100k), above director (50k), above manager (25k)
			So(q.IsDecisionMaker("VP of Sales", "Sales", nil), ShouldBeFalse)
			So(q.IsDecisionMaker("Director of Operations", "Operations", nil), ShouldBeTrue)
			So(q.IsDecisionMaker("Operations Manager", "Operations", nil), ShouldBeTrue)

			bigDeal := midMarketQualifier(150_000)
			So(bigDeal.IsDecisionMaker("VP of Sales", "Sales", nil), ShouldBeTrue)

			smallDeal := midMarketQualifier(10_000)
			So(smallDeal.IsDecisionMaker("VP of Sales", "Sales", nil), ShouldBeFalse)
			So(smallDeal.IsDecisionMaker("Director of Operations", "Operations", nil), ShouldBeFalse)
			So(smallDeal.IsDecisionMaker("Operations Manager", "Operations", nil), ShouldBeFalse)
		})

		Convey("Vice presidents gate on deal size, not the president rule", func() {
			So(q.IsDecisionMaker("Vice President of Sales", "Sales", nil), ShouldBeFalse)

			bigDeal := midMarketQualifier(150_000)
			So(bigDeal.IsDecisionMaker("Vice President of Sales", "Sales", nil), ShouldBeTrue)
		})

		Convey("Acronyms inside longer words grant no authority", func() {
			smallDeal := midMarketQualifier(10_000)

			// "coo" inside coordinator and "cto" inside director are not
			// executive matches; these titles take the deal-size gates.
			So(smallDeal.IsDecisionMaker("Coordinator", "Operations", nil), ShouldBeFalse)
			So(smallDeal.IsDecisionMaker("Director of Operations", "Operations", &model.Candidate{}), ShouldBeFalse)
		})

		Convey("Non-authority titles never qualify", func() {
			So(q.IsDecisionMaker("Software Engineer", "Engineering", nil), ShouldBeFalse)
			So(q.IsDecisionMaker("Analyst", "Finance", nil), ShouldBeFalse)
		})
	})
}

func TestIsChampion(t *testing.T) {
	Convey("Given a qualifier", t, func() {
		q := midMarketQualifier(60_000)

		Convey("Directors in revenue-adjacent departments qualify", func() {
			So(q.IsChampion("Director of Sales", "Sales", nil), ShouldBeTrue)
			So(q.IsChampion("Director of Product", "Product", nil), ShouldBeTrue)
			So(q.IsChampion("Director of Operations", "Operations", nil), ShouldBeTrue)
		})

		Convey("Senior directors are decision-track, not champions", func() {
			So(q.IsChampion("Senior Director of Sales", "Sales", nil), ShouldBeFalse)
		})

		Convey("Senior managers qualify like directors", func() {
			So(q.IsChampion("Senior Manager", "Revenue", nil), ShouldBeTrue)
			So(q.IsChampion("Sr Manager", "Sales", nil), ShouldBeTrue)
		})

		Convey("Outside those departments, champion potential decides", func() {
			So(q.IsChampion("Director of IT", "IT", nil), ShouldBeFalse)

			weak := &model.Candidate{Scores: model.Scores{ChampionPotential: floatPtr(10)}}
			So(q.IsChampion("Director of IT", "IT", weak), ShouldBeFalse)

			strong := &model.Candidate{Scores: model.Scores{ChampionPotential: floatPtr(20)}}
			So(q.IsChampion("Director of IT", "IT", strong), ShouldBeTrue)
		})

		Convey("Titles without the advocate profile never qualify", func() {
			strong := &model.Candidate{Scores: model.Scores{ChampionPotential: floatPtr(25)}}
			So(q.IsChampion("Software Engineer", "Engineering", strong), ShouldBeFalse)
			So(q.IsChampion("CEO", "Executive", strong), ShouldBeFalse)
		})
	})
}

func TestIsBlocker(t *testing.T) {
	Convey("Given a qualifier", t, func() {
		q := midMarketQualifier(60_000)

		Convey("Gatekeeping titles qualify", func() {
			So(q.IsBlocker("Security Engineer", "Engineering"), ShouldBeTrue)
			So(q.IsBlocker("General Counsel", "Legal"), ShouldBeTrue)
			So(q.IsBlocker("Compliance Officer", "Risk"), ShouldBeTrue)
			So(q.IsBlocker("Procurement Specialist", "Finance"), ShouldBeTrue)
			So(q.IsBlocker("Vendor Manager", "Operations"), ShouldBeTrue)
		})

		Convey("Gatekeeping departments qualify regardless of title", func() {
			So(q.IsBlocker("Analyst", "Security"), ShouldBeTrue)
			So(q.IsBlocker("Coordinator", "Legal"), ShouldBeTrue)
		})

		Convey("Everything else does not", func() {
			So(q.IsBlocker("Sales Manager", "Sales"), ShouldBeFalse)
			So(q.IsBlocker("Software Engineer", "Engineering"), ShouldBeFalse)
		})
	})
}

func TestIsIntroducer(t *testing.T) {
	Convey("Given a qualifier", t, func() {
		q := midMarketQualifier(60_000)

		Convey("Customer-facing titles with high influence qualify", func() {
			c := &model.Candidate{Scores: model.Scores{Influence: floatPtr(9)}}
			So(q.IsIntroducer("Account Executive", "Sales", c), ShouldBeTrue)
			So(q.IsIntroducer("Customer Success Manager", "Customer Success", c), ShouldBeTrue)
			So(q.IsIntroducer("Partnership Lead", "Partnerships", c), ShouldBeTrue)
		})

		Convey("Low influence disqualifies", func() {
			c := &model.Candidate{Scores: model.Scores{Influence: floatPtr(3)}}
			So(q.IsIntroducer("Account Executive", "Sales", c), ShouldBeFalse)
		})

		Convey("Network size stands in for a missing influence score", func() {
			c := &model.Candidate{Connections: 8000}
			So(q.IsIntroducer("Account Executive", "Sales", c), ShouldBeTrue)

			small := &model.Candidate{Connections: 2000}
			So(q.IsIntroducer("Account Executive", "Sales", small), ShouldBeFalse)
		})

		Convey("Non-customer-facing titles never qualify", func() {
			c := &model.Candidate{Scores: model.Scores{Influence: floatPtr(10)}}
			So(q.IsIntroducer("Software Engineer", "Engineering", c), ShouldBeFalse)
		})

		Convey("A nil candidate cannot qualify", func() {
			So(q.IsIntroducer("Account Executive", "Sales", nil), ShouldBeFalse)
		})
	})
}

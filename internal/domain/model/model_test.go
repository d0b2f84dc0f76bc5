package model_test

import (
	"encoding/json"
	"testing"

	model "github.com/adrata/monaco/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func floatPtr(v float64) *float64 { return &v }

func TestRole(t *testing.T) {
	convey.Convey("Given the buyer-group role set", t, func() {
		convey.Convey("When checking known roles", func() {
			roles := []model.Role{
				model.RoleDecision,
				model.RoleChampion,
				model.RoleStakeholder,
				model.RoleBlocker,
				model.RoleIntroducer,
			}

			convey.Convey("Then they should all be valid", func() {
				for _, role := range roles {
					convey.So(role.Valid(), convey.ShouldBeTrue)
				}
			})
		})

		convey.Convey("When checking unknown roles", func() {
			convey.Convey("Then they should be invalid", func() {
				convey.So(model.Role("gatekeeper").Valid(), convey.ShouldBeFalse)
				convey.So(model.Role("").Valid(), convey.ShouldBeFalse)
				convey.So(model.Role("DECISION").Valid(), convey.ShouldBeFalse)
			})
		})

		convey.Convey("When listing all roles", func() {
			roles := model.AllRoles()

			convey.Convey("Then they should appear in exclusivity order", func() {
				convey.So(roles, convey.ShouldResemble, []model.Role{
					model.RoleDecision,
					model.RoleChampion,
					model.RoleBlocker,
					model.RoleIntroducer,
					model.RoleStakeholder,
				})
			})
		})
	})
}

func TestScores(t *testing.T) {
	convey.Convey("Given candidate scores", t, func() {
		convey.Convey("When all scores are present", func() {
			scores := model.Scores{
				Seniority:         floatPtr(9),
				ChampionPotential: floatPtr(20),
				Influence:         floatPtr(8),
				Overall:           floatPtr(85),
				DepartmentFit:     floatPtr(7),
			}

			convey.Convey("Then value helpers should return them", func() {
				convey.So(scores.ChampionPotentialValue(), convey.ShouldEqual, 20)
				convey.So(scores.OverallValue(), convey.ShouldEqual, 85)
			})
		})

		convey.Convey("When scores are absent", func() {
			scores := model.Scores{}

			convey.Convey("Then champion potential should default to zero", func() {
				convey.So(scores.ChampionPotentialValue(), convey.ShouldEqual, 0)
			})

			convey.Convey("And the overall score should default to the neutral midpoint", func() {
				convey.So(scores.OverallValue(), convey.ShouldEqual, 50)
			})
		})
	})
}

func TestCandidateInfluenceScore(t *testing.T) {
	convey.Convey("Given a candidate", t, func() {
		convey.Convey("When the influence score is present", func() {
			c := model.Candidate{
				ID:          "c1",
				Title:       "Account Executive",
				Connections: 9000,
				Scores:      model.Scores{Influence: floatPtr(6)},
			}

			convey.Convey("Then it should take precedence over connections", func() {
				convey.So(c.InfluenceScore(), convey.ShouldEqual, 6)
			})
		})

		convey.Convey("When only connections are known", func() {
			c := model.Candidate{ID: "c2", Title: "Consultant", Connections: 4000}

			convey.Convey("Then one point per thousand connections should apply", func() {
				convey.So(c.InfluenceScore(), convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When the network is very large", func() {
			c := model.Candidate{ID: "c3", Title: "Evangelist", Connections: 25_000}

			convey.Convey("Then the score should cap at ten", func() {
				convey.So(c.InfluenceScore(), convey.ShouldEqual, 10)
			})
		})

		convey.Convey("When neither signal is present", func() {
			c := model.Candidate{ID: "c4", Title: "Analyst"}

			convey.Convey("Then the score should be zero", func() {
				convey.So(c.InfluenceScore(), convey.ShouldEqual, 0)
			})
		})
	})
}

func TestCompositionResultJSON(t *testing.T) {
	convey.Convey("Given a composition result", t, func() {
		result := model.CompositionResult{
			JobID:       "job-1",
			CompanyName: "Acme",
			Tier:        "midmarket",
			Group: []model.AssignedMember{
				{
					Candidate:      model.Candidate{ID: "c1", Title: "CEO", Connections: 2500},
					Role:           model.RoleDecision,
					RoleConfidence: 100,
					RoleReasoning:  "Title indicates final purchase authority",
				},
			},
			Distribution: map[model.Role]int{model.RoleDecision: 1},
			Validation:   model.ValidationReport{IsValid: true},
		}

		convey.Convey("When marshaling to JSON", func() {
			data, err := json.Marshal(result)
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then the wire field names should be stable", func() {
				body := string(data)
				convey.So(body, convey.ShouldContainSubstring, `"company_tier":"midmarket"`)
				convey.So(body, convey.ShouldContainSubstring, `"buyer_group"`)
				convey.So(body, convey.ShouldContainSubstring, `"buyer_group_role":"decision"`)
				convey.So(body, convey.ShouldContainSubstring, `"connections_count":2500`)
				convey.So(body, convey.ShouldContainSubstring, `"is_valid":true`)
			})

			convey.Convey("And it should round-trip", func() {
				var decoded model.CompositionResult
				convey.So(json.Unmarshal(data, &decoded), convey.ShouldBeNil)
				convey.So(decoded.Tier, convey.ShouldEqual, "midmarket")
				convey.So(decoded.Group, convey.ShouldHaveLength, 1)
				convey.So(decoded.Group[0].Role, convey.ShouldEqual, model.RoleDecision)
			})
		})
	})
}

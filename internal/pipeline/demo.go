package pipeline

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Scenario holds the demo data for one scripted run: the simulated contact
// plus the decision each agent will produce.
type Scenario struct {
	Label   string
	Contact string
	Channel string

	Primary    Decision
	Supervisor Decision
	Escalation Decision

	PrimaryMS    int64
	SupervisorMS int64
	EscalationMS int64
}

// Decision returns the decision the given role produces in this scenario.
func (s Scenario) Decision(role Role) Decision {
	switch role {
	case RoleSupervisor:
		return s.Supervisor
	case RoleEscalation:
		return s.Escalation
	default:
		return s.Primary
	}
}

// LatencyMS returns the simulated processing time for the given role.
func (s Scenario) LatencyMS(role Role) int64 {
	switch role {
	case RoleSupervisor:
		return s.SupervisorMS
	case RoleEscalation:
		return s.EscalationMS
	default:
		return s.PrimaryMS
	}
}

// scenarioTemplate is one hardcoded demo contact. Confidence scores get a
// small jitter per run; everything else is fixed.
type scenarioTemplate struct {
	label   string
	channel string
	intent  string

	primaryType      string
	primarySummary   string
	primaryConf      float64
	primaryReasons   []string
	primaryRisk      RiskTier
	supervisorType   string
	supervisorSum    string
	supervisorAdjust float64
	supervisorRisk   RiskTier
	supervisorReas   []string
	escalationType   string
	escalationSum    string
	escalationConf   float64
	escalationRisk   RiskTier
	escalationReas   []string
}

var demoScenarios = []scenarioTemplate{
	{
		label:          "Billing dispute — double charge",
		channel:        "chat",
		intent:         "billing_dispute",
		primaryType:    "auto_response",
		primarySummary: "Drafted refund explanation and queued reversal of the duplicate charge.",
		primaryConf:    0.78,
		primaryReasons: []string{
			"Two identical charges posted within 90 seconds on the same card",
			"Order history shows a single fulfilled shipment",
			"Refund amount falls inside automatic approval limits",
		},
		primaryRisk:      RiskLow,
		supervisorType:   "approve",
		supervisorSum:    "Reversal verified against the payment processor; response approved as drafted.",
		supervisorAdjust: 0.06,
		supervisorRisk:   RiskLow,
		supervisorReas: []string{
			"Processor log confirms the duplicate authorization",
			"Refund policy section 4.2 covers duplicate charges without review",
		},
		escalationType: "resolve",
		escalationSum:  "Refund confirmed within policy limits; no human handoff required.",
		escalationConf: 0.88,
		escalationRisk: RiskNone,
		escalationReas: []string{
			"Both reviewing agents agree on the refund",
			"Customer tenure over two years with no prior disputes",
		},
	},
	{
		label:          "Cancellation request — retention offer",
		channel:        "voice",
		intent:         "cancel_service",
		primaryType:    "auto_response",
		primarySummary: "Proposed a 20% loyalty discount in place of cancellation.",
		primaryConf:    0.62,
		primaryReasons: []string{
			"Caller cited price as the only cancellation reason",
			"Account qualifies for the loyalty discount tier",
			"No competitor mention detected in the transcript",
		},
		primaryRisk:      RiskMedium,
		supervisorType:   "revise",
		supervisorSum:    "Proposed discount exceeds the tier allowance; revised to 15% plus a free month.",
		supervisorAdjust: -0.07,
		supervisorRisk:   RiskMedium,
		supervisorReas: []string{
			"20% requires manager sign-off for this plan",
			"Revised bundle has a higher historical acceptance rate",
		},
		escalationType: "human_handoff",
		escalationSum:  "Negative sentiment through the call; routed to a retention specialist.",
		escalationConf: 0.67,
		escalationRisk: RiskMedium,
		escalationReas: []string{
			"Sentiment score below the automated-retention threshold",
			"High-value account flagged for personal follow-up",
		},
	},
	{
		label:          "Outage report — degraded broadband",
		channel:        "voice",
		intent:         "tech_support",
		primaryType:    "auto_response",
		primarySummary: "Confirmed a known area outage and shared the estimated restoration window.",
		primaryConf:    0.71,
		primaryReasons: []string{
			"Line diagnostics match the open incident for the caller's region",
			"Incident dashboard lists restoration within four hours",
			"No equipment fault indicated by the modem handshake",
		},
		primaryRisk:      RiskLow,
		supervisorType:   "approve_with_changes",
		supervisorSum:    "Added an SMS status subscription to the outage reply before sending.",
		supervisorAdjust: 0.05,
		supervisorRisk:   RiskLow,
		supervisorReas: []string{
			"Restoration estimate confirmed against the incident feed",
			"Status subscription reduces repeat contacts during outages",
		},
		escalationType: "resolve",
		escalationSum:  "Outage response sent with status tracking; case closed pending restoration.",
		escalationConf: 0.81,
		escalationRisk: RiskNone,
		escalationReas: []string{
			"Incident owned by network operations, nothing further for support",
			"Customer accepted the estimated window",
		},
	},
	{
		label:          "Chargeback threat — disputed invoice",
		channel:        "email",
		intent:         "payment_dispute",
		primaryType:    "auto_response",
		primarySummary: "Drafted an itemized invoice breakdown; flagged legal-sounding phrasing for review.",
		primaryConf:    0.44,
		primaryReasons: []string{
			"Invoice total matches the signed order form",
			"Message contains chargeback and small-claims phrasing",
			"No prior billing disputes on the account",
		},
		primaryRisk:      RiskHigh,
		supervisorType:   "flag_risk",
		supervisorSum:    "Legal phrasing confirmed; response held for the disputes process.",
		supervisorAdjust: -0.06,
		supervisorRisk:   RiskHigh,
		supervisorReas: []string{
			"Chargeback threats route to the disputes team by policy",
			"Automated reply could prejudice a formal dispute",
		},
		escalationType: "human_handoff",
		escalationSum:  "Transferred to the disputes team with the drafted breakdown attached.",
		escalationConf: 0.52,
		escalationRisk: RiskCritical,
		escalationReas: []string{
			"Policy requires human ownership of legal-risk contacts",
			"Draft preserved so the specialist starts from the prepared numbers",
		},
	},
	{
		label:          "Address change — verification mismatch",
		channel:        "chat",
		intent:         "account_update",
		primaryType:    "auto_response",
		primarySummary: "Collected the new address but held the change on a failed postcode check.",
		primaryConf:    0.58,
		primaryReasons: []string{
			"Provided postcode does not match the stated city",
			"Account passed knowledge-based verification",
			"Change is reversible within the grace window",
		},
		primaryRisk:      RiskLow,
		supervisorType:   "approve_with_changes",
		supervisorSum:    "Normalized the address against the postal registry and released the hold.",
		supervisorAdjust: 0.08,
		supervisorRisk:   RiskLow,
		supervisorReas: []string{
			"Registry lookup resolved the postcode to a renamed district",
			"No signals associated with account-takeover patterns",
		},
		escalationType: "resolve",
		escalationSum:  "Address updated with confirmation sent to both old and new contact points.",
		escalationConf: 0.74,
		escalationRisk: RiskNone,
		escalationReas: []string{
			"Dual confirmation covers the takeover edge case",
			"Verification trail stored on the account timeline",
		},
	},
}

// Generator produces demo scenarios for scripted runs. It is hardcoded
// data with light per-run jitter so repeat runs look alive without ever
// leaving the scripted rails.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator. A zero seed picks one from the wall
// clock; any other value makes the generator deterministic.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Scenario picks a demo contact and materializes the three agent decisions
// for one run.
func (g *Generator) Scenario() Scenario {
	tpl := demoScenarios[g.rng.Intn(len(demoScenarios))]

	primaryConf := g.jitter(tpl.primaryConf)
	supervisorConf := ClampScore(primaryConf + tpl.supervisorAdjust)

	return Scenario{
		Label:   tpl.label,
		Contact: newContactRef(),
		Channel: tpl.channel,
		Primary: Decision{
			Type:       tpl.primaryType,
			Intent:     tpl.intent,
			Summary:    tpl.primarySummary,
			Confidence: primaryConf,
			Risk:       tpl.primaryRisk,
			Reasoning:  tpl.primaryReasons,
		},
		Supervisor: Decision{
			Type:       tpl.supervisorType,
			Intent:     tpl.intent,
			Summary:    tpl.supervisorSum,
			Confidence: supervisorConf,
			Risk:       tpl.supervisorRisk,
			Reasoning:  tpl.supervisorReas,
		},
		Escalation: Decision{
			Type:       tpl.escalationType,
			Intent:     tpl.intent,
			Summary:    tpl.escalationSum,
			Confidence: g.jitter(tpl.escalationConf),
			Risk:       tpl.escalationRisk,
			Reasoning:  tpl.escalationReas,
		},
		PrimaryMS:    g.latency(800, 1600),
		SupervisorMS: g.latency(1000, 2200),
		EscalationMS: g.latency(600, 1800),
	}
}

// jitter shifts a confidence score by up to ±0.04 and clamps it.
func (g *Generator) jitter(score float64) float64 {
	return ClampScore(score + (g.rng.Float64()-0.5)*0.08)
}

// latency picks a simulated processing time between min and max
// milliseconds.
func (g *Generator) latency(min, max int64) int64 {
	return min + g.rng.Int63n(max-min)
}

// newContactRef builds a short display reference for the simulated contact.
func newContactRef() string {
	id := strings.ToUpper(uuid.NewString())
	return "CASE-" + id[:8]
}

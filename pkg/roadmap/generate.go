package roadmap

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"career-roadmap-be/pkg/llm"
	"career-roadmap-be/pkg/websearch"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// generateWithModel runs the single model call of the RAG path and parses its
// JSON answer. Any failure returns nil so the caller falls through to the
// rule-based path.
func (e *Engine) generateWithModel(
	ctx context.Context,
	targetJob, targetCompany string,
	companies []websearch.CompanyResult,
	job *websearch.JobResult,
	ragCtx RagContext,
) *GenerationResult {
	if e.provider == nil {
		return nil
	}

	companyText := BuildCompanyInfoText(companies)
	jobText := BuildJobInfoText(job)
	userContext := BuildUserContext(targetJob, targetCompany, jobText, companyText, ragCtx)

	callCtx := ctx
	if e.cfg.GenerateTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, e.cfg.GenerateTimeout)
		defer cancel()
	}

	raw, err := e.provider.Chat(callCtx, []llm.Message{
		{Role: "system", Content: SystemPrompt},
		{Role: "user", Content: userContext},
	},
		llm.WithModel(e.model),
		llm.WithTemperature(0),
		llm.WithJSONOutput(),
	)
	if err != nil {
		e.logger.Printf("[ROADMAP] model call failed: %v", err)
		return nil
	}

	var result GenerationResult
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &result); err != nil {
		e.logger.Printf("[ROADMAP] model output parse failed: %v", err)
		return nil
	}
	if result.Summary == "" && len(result.Plan) == 0 {
		e.logger.Printf("[ROADMAP] model output missing summary and plan")
		return nil
	}

	result.CompanyInfos = companies
	result.JobRequirementsText = buildJobRequirementsText(job)

	outEval := EvaluateOutput(&result)
	passedChecks := 0
	for _, c := range outEval.Checks {
		if c.OK {
			passedChecks++
		}
	}
	e.logger.Printf("[ROADMAP] output evaluation: score=%d passed=%d/%d", outEval.Score, passedChecks, len(outEval.Checks))
	for _, c := range outEval.Checks {
		if !c.OK {
			e.logger.Printf("[ROADMAP] output check failed: %s", c.Label)
		}
	}

	allowed := make([]string, 0, len(companies)+1)
	if !isUnsetValue(targetCompany) {
		allowed = append(allowed, targetCompany)
	}
	for _, c := range companies {
		allowed = append(allowed, c.CompanyName)
	}
	ctxEval := EvaluateContextUtilization(&result, allowed)
	e.logger.Printf("[ROADMAP] context evaluation: faithfulness=%.2f citations=%d", ctxEval.FaithfulnessScore, ctxEval.CitationCount)
	for _, d := range ctxEval.Details {
		e.logger.Printf("[ROADMAP] %s", d)
	}

	return &result
}

// stripCodeFences removes markdown ``` wrappers some models emit around JSON.
func stripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	lines := strings.Split(trimmed, "\n")
	var kept []string
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// buildJobRequirementsText condenses search-derived job requirements into a
// short text used by the competency scorer.
func buildJobRequirementsText(job *websearch.JobResult) string {
	if job == nil {
		return ""
	}
	var parts []string
	for _, s := range []string{job.Requirements, job.Skills} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	joined := whitespaceRe.ReplaceAllString(strings.Join(parts, " · "), " ")
	joined = strings.TrimSpace(joined)
	runes := []rune(joined)
	if len(runes) > 400 {
		joined = string(runes[:400])
	}
	return joined
}

package emotion

import (
	"fmt"
	"math/rand/v2"
)

// builtins returns the personalities every new Registry is seeded with.
//
// Quiet carries per-instance state, so each registry gets its own.
func builtins() map[string]Personality {
	return map[string]Personality{
		"wholesome": PersonalityFunc(Wholesome),
		"sassy":     PersonalityFunc(Sassy),
		"quiet":     NewQuiet(10),
		"nervous":   PersonalityFunc(Nervous),
		"chaotic":   PersonalityFunc(Chaotic),
		"arrogant":  PersonalityFunc(Arrogant),
		"tired":     PersonalityFunc(Tired),
		"hype":      PersonalityFunc(Hype),
		"academic":  PersonalityFunc(Academic),
		"pirate":    PersonalityFunc(Pirate),
		"zen":       PersonalityFunc(Zen),
	}
}

// Wholesome is the default personality: endlessly supportive.
//
// It stays silent when the loss does not change.
func Wholesome(loss float64, prevLoss *float64, step int) string {
	switch {
	case prevLoss == nil:
		return fmt.Sprintf("✨ Let's get started! Initial loss: %.4f", loss)
	case loss < *prevLoss:
		return fmt.Sprintf("💖 Nice! Loss improved from %.4f to %.4f.", *prevLoss, loss)
	case loss > *prevLoss:
		return fmt.Sprintf("🌱 It's okay! Loss went from %.4f to %.4f. Learning isn't always monotonic.", *prevLoss, loss)
	}
	return "" // no message if unchanged
}

// Sassy is grudging at best.
func Sassy(loss float64, prevLoss *float64, step int) string {
	switch {
	case prevLoss == nil:
		return "😒 Fine, let's see what you've got."
	case loss > *prevLoss:
		return fmt.Sprintf("🙄 Bold move: loss got worse (%.4f → %.4f).", *prevLoss, loss)
	case loss < *prevLoss:
		return fmt.Sprintf("👏 About time: %.4f → %.4f.", *prevLoss, loss)
	}
	return "🤨 Exactly the same? Interesting choice."
}

// Quiet only speaks up every Nth reaction, whatever the decorator's own
// cadence is. It counts invocations internally, so it demonstrates a
// personality that carries state.
type Quiet struct {
	everyN int
	calls  int
}

// NewQuiet creates a Quiet personality that emits every everyN reactions.
// Values below 1 fall back to 10.
func NewQuiet(everyN int) *Quiet {
	if everyN < 1 {
		everyN = 10
	}
	return &Quiet{everyN: everyN}
}

// React reports the current loss on every Nth call and stays silent
// otherwise.
func (q *Quiet) React(loss float64, prevLoss *float64, step int) string {
	q.calls++
	if q.calls%q.everyN != 0 {
		return ""
	}
	return fmt.Sprintf("🔎 Step %d: current loss %.4f", step, loss)
}

// Nervous worries about everything, including good news.
func Nervous(loss float64, prevLoss *float64, step int) string {
	switch {
	case prevLoss == nil:
		return fmt.Sprintf("😰 Oh no, here we go... Initial loss is %.4f. I hope this works...", loss)
	case loss < *prevLoss:
		return fmt.Sprintf("😅 Phew! Loss dropped from %.4f to %.4f. But what if it goes back up?!", *prevLoss, loss)
	case loss > *prevLoss:
		return fmt.Sprintf("😱 I KNEW IT! Loss went up from %.4f to %.4f! Is everything okay?!", *prevLoss, loss)
	}
	return fmt.Sprintf("😬 Loss is exactly the same... %.4f. That's... concerning?", loss)
}

// Chaotic says one of several unpredictable things.
func Chaotic(loss float64, prevLoss *float64, step int) string {
	pick := func(options []string) string {
		return options[rand.IntN(len(options))]
	}

	switch {
	case prevLoss == nil:
		return pick([]string{
			fmt.Sprintf("🎲 CHAOS BEGINS! Loss: %.4f! LET'S GOOOOO!", loss),
			fmt.Sprintf("🌪️ *appears from nowhere* Oh, we're training? Loss is %.4f!", loss),
			fmt.Sprintf("🃏 Wild card activated! Starting loss: %.4f!", loss),
		})
	case loss < *prevLoss:
		return pick([]string{
			fmt.Sprintf("🎉 YEET! %.4f → %.4f! *does a backflip*", *prevLoss, loss),
			fmt.Sprintf("🦄 Loss improved! %.4f → %.4f! Is this magic?!", *prevLoss, loss),
			fmt.Sprintf("🚀 TO THE MOON! Well, to lower loss at least: %.4f!", loss),
		})
	case loss > *prevLoss:
		return pick([]string{
			fmt.Sprintf("💥 BOOM! Loss exploded: %.4f → %.4f! EXCITING!", *prevLoss, loss),
			fmt.Sprintf("🎢 Wheeeee! Loss went UP to %.4f! What a ride!", loss),
			fmt.Sprintf("🔥 This is fine. Loss: %.4f. Everything is fine. 🔥", loss),
		})
	}
	return fmt.Sprintf("🌀 Time is a flat circle. Loss: %.4f. Always has been.", loss)
}

// Arrogant takes all the credit and none of the blame.
func Arrogant(loss float64, prevLoss *float64, step int) string {
	switch {
	case prevLoss == nil:
		return fmt.Sprintf("🧐 *adjusts monocle* Initial loss of %.4f? I suppose that's... acceptable for a beginner.", loss)
	case loss < *prevLoss:
		return fmt.Sprintf("😏 Obviously the loss improved (%.4f → %.4f). You're welcome for my guidance.", *prevLoss, loss)
	case loss > *prevLoss:
		return fmt.Sprintf("🙄 Loss increased to %.4f? Perhaps you should have listened to my earlier suggestions.", loss)
	}
	return fmt.Sprintf("😤 No change at %.4f. Clearly, you need my expertise more than ever.", loss)
}

// Tired just wants this training run to be over.
func Tired(loss float64, prevLoss *float64, step int) string {
	switch {
	case prevLoss == nil:
		return fmt.Sprintf("😴 *yawn* Oh, we're starting? Loss is %.4f... wake me when it's over.", loss)
	case loss < *prevLoss:
		return fmt.Sprintf("😪 Cool, loss went down... %.4f → %.4f... can I go back to sleep now?", *prevLoss, loss)
	case loss > *prevLoss:
		return fmt.Sprintf("😩 Ugh, loss went up to %.4f. Of course it did. I'm too tired for this.", loss)
	}
	return fmt.Sprintf("💤 Loss is still %.4f... zzzz...", loss)
}

// Hype is extremely enthusiastic about every outcome.
func Hype(loss float64, prevLoss *float64, step int) string {
	switch {
	case prevLoss == nil:
		return fmt.Sprintf("🔥🔥🔥 LET'S GOOOOOO!!! Initial loss: %.4f! THIS IS GONNA BE AMAZING!!!", loss)
	case loss < *prevLoss:
		return fmt.Sprintf("🎊🎊🎊 YOOOOO!!! LOSS DROPPED FROM %.4f TO %.4f!!! WE'RE LITERALLY UNSTOPPABLE!!! 💪💪💪", *prevLoss, loss)
	case loss > *prevLoss:
		return fmt.Sprintf("😤😤😤 OKAY SO LOSS WENT UP TO %.4f BUT THAT'S JUST MAKING THE COMEBACK EVEN MORE EPIC!!! LET'S GO!!!", loss)
	}
	return fmt.Sprintf("⚡⚡⚡ LOSS HOLDING STEADY AT %.4f!!! THE TENSION IS REAL!!!", loss)
}

// Academic reports the trend in research-paper register, including the
// absolute and relative change.
func Academic(loss float64, prevLoss *float64, step int) string {
	if prevLoss == nil {
		return fmt.Sprintf("📊 Initial observation: loss function yields %.4f. Proceeding with gradient descent optimization.", loss)
	}

	delta := loss - *prevLoss
	pctChange := 0.0
	if *prevLoss != 0 {
		pctChange = delta / *prevLoss * 100
	}

	switch {
	case loss < *prevLoss:
		return fmt.Sprintf("📈 Statistically significant improvement observed. Loss decreased from %.4f to %.4f (Δ = %.4f, %.2f%% reduction).",
			*prevLoss, loss, delta, -pctChange)
	case loss > *prevLoss:
		return fmt.Sprintf("📉 Note: Loss increased from %.4f to %.4f (Δ = %.4f, %.2f%% increase). Further investigation may be warranted.",
			*prevLoss, loss, delta, pctChange)
	}
	return fmt.Sprintf("📋 No statistically significant change detected. Loss remains at %.4f. Null hypothesis cannot be rejected.", loss)
}

// Pirate narrates the voyage. Arrr.
func Pirate(loss float64, prevLoss *float64, step int) string {
	switch {
	case prevLoss == nil:
		return fmt.Sprintf("🏴‍☠️ Ahoy! We be settin' sail! Initial loss be %.4f, matey!", loss)
	case loss < *prevLoss:
		return fmt.Sprintf("⚓ Shiver me timbers! Loss dropped from %.4f to %.4f! That be treasure, arr!", *prevLoss, loss)
	case loss > *prevLoss:
		return fmt.Sprintf("☠️ Blimey! Loss went up to %.4f! We be sailin' into rough waters, ye scallywag!", loss)
	}
	return fmt.Sprintf("🦜 The seas be calm, loss steady at %.4f. Onwards, me hearties!", loss)
}

// Zen is at peace with whatever the gradient brings.
func Zen(loss float64, prevLoss *float64, step int) string {
	switch {
	case prevLoss == nil:
		return fmt.Sprintf("🧘 The journey of a thousand gradients begins with a single step. Loss: %.4f.", loss)
	case loss < *prevLoss:
		return fmt.Sprintf("☯️ Like water flowing downhill, the loss descends: %.4f → %.4f. Breathe.", *prevLoss, loss)
	case loss > *prevLoss:
		return fmt.Sprintf("🍃 The wind sometimes blows against us. Loss: %.4f. This too shall pass.", loss)
	}
	return fmt.Sprintf("🌸 Stillness. Loss remains at %.4f. Find peace in the plateau.", loss)
}

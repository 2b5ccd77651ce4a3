// Package scoring computes element, category and report scores for landing
// page optimization reports, plus the contextual benchmark score.
//
// All lookup data lives in an injected read-only Tables value built once at
// startup; every function in the package is pure and total, so unknown keys
// resolve to documented defaults instead of errors.
package scoring

// ContentVariants holds the two base optimization scores for an element,
// keyed by whether real site text was extracted for it.
type ContentVariants struct {
	WithContent    int
	WithoutContent int
}

// BenchmarkEntry is the {base, factors} pair for one (focusArea, industry).
type BenchmarkEntry struct {
	Base    int
	Factors map[string]int
}

// Tables is the read-only scoring configuration. Construct with
// DefaultTables; tests may substitute their own.
type Tables struct {
	// Optimization maps focusArea -> element name -> base score variants (1-6).
	Optimization map[string]map[string]ContentVariants
	// OptimizationDefaults is the per-focusArea fallback for unknown elements.
	OptimizationDefaults map[string]ContentVariants
	// IndustryOptimizationAdj shifts the optimization base by -1..+1.
	IndustryOptimizationAdj map[string]int

	// Impact maps focusArea -> element name -> base impact score (1-4).
	Impact map[string]map[string]int
	// ImpactDefault is the fallback base impact for unknown elements.
	ImpactDefault int
	// IndustryImpactAdj shifts the impact base by -1..+1.
	IndustryImpactAdj map[string]int

	// TimingMinutes maps element name -> base implementation minutes.
	TimingMinutes map[string]int
	// TimingDefaultMinutes is the fallback for unknown elements.
	TimingDefaultMinutes int
	// IndustryTimingMultiplier scales minutes by 0.8-1.3.
	IndustryTimingMultiplier map[string]float64

	// Benchmarks maps focusArea -> industry -> {base, goal factors}.
	Benchmarks map[string]map[string]BenchmarkEntry
	// BenchmarkDefault is used when no (focusArea, industry) entry exists.
	BenchmarkDefault BenchmarkEntry
}

// DefaultTables returns the production scoring configuration.
//
// The hasContent variants encode one deliberate asymmetry: for most focus
// areas, extracted content scores higher optimization than absence, but for
// SEO elements a page with no extractable meta-signals bottoms out at 1-2 —
// a missing title tag is a worse starting point than a weak one.
func DefaultTables() *Tables {
	return &Tables{
		Optimization: map[string]map[string]ContentVariants{
			"copywriting": {
				"Main headline":      {WithContent: 4, WithoutContent: 2},
				"Subheadline":        {WithContent: 4, WithoutContent: 2},
				"Value proposition":  {WithContent: 3, WithoutContent: 2},
				"Supporting copy":    {WithContent: 4, WithoutContent: 3},
				"Benefit statements": {WithContent: 4, WithoutContent: 2},
				"Social proof copy":  {WithContent: 3, WithoutContent: 2},
				"Urgency triggers":   {WithContent: 3, WithoutContent: 2},
				"Paragraph structure": {WithContent: 5, WithoutContent: 3},
				"Scannability":       {WithContent: 4, WithoutContent: 3},
				"Tone of voice":      {WithContent: 5, WithoutContent: 3},
				"Jargon level":       {WithContent: 5, WithoutContent: 4},
				"Primary CTA text":   {WithContent: 4, WithoutContent: 2},
				"Secondary CTA text": {WithContent: 4, WithoutContent: 3},
				"Microcopy":          {WithContent: 4, WithoutContent: 3},
			},
			"uxui": {
				"Above the fold layout": {WithContent: 4, WithoutContent: 2},
				"Content grouping":      {WithContent: 4, WithoutContent: 3},
				"Whitespace balance":    {WithContent: 5, WithoutContent: 3},
				"Menu structure":        {WithContent: 4, WithoutContent: 3},
				"Scroll depth cues":     {WithContent: 3, WithoutContent: 2},
				"Internal links":        {WithContent: 4, WithoutContent: 3},
				"Testimonials display":  {WithContent: 3, WithoutContent: 2},
				"Trust badges":          {WithContent: 3, WithoutContent: 2},
				"Brand consistency":     {WithContent: 5, WithoutContent: 4},
				"Form length":           {WithContent: 4, WithoutContent: 3},
				"Field labels":          {WithContent: 4, WithoutContent: 3},
				"Error feedback":        {WithContent: 3, WithoutContent: 2},
			},
			"mobile": {
				"Viewport configuration": {WithContent: 5, WithoutContent: 2},
				"Tap target size":        {WithContent: 4, WithoutContent: 3},
				"Font scaling":           {WithContent: 4, WithoutContent: 3},
				"Image optimization":     {WithContent: 4, WithoutContent: 2},
				"Script weight":          {WithContent: 3, WithoutContent: 2},
				"Render blocking":        {WithContent: 3, WithoutContent: 2},
				"Hamburger menu":         {WithContent: 4, WithoutContent: 3},
				"Sticky CTA":             {WithContent: 3, WithoutContent: 2},
				"Thumb reachability":     {WithContent: 4, WithoutContent: 3},
				"Content prioritization": {WithContent: 4, WithoutContent: 3},
				"Form usability":         {WithContent: 4, WithoutContent: 3},
				"Popup behavior":         {WithContent: 3, WithoutContent: 4},
			},
			"cta": {
				"Primary CTA placement": {WithContent: 4, WithoutContent: 2},
				"CTA contrast":          {WithContent: 4, WithoutContent: 3},
				"CTA repetition":        {WithContent: 4, WithoutContent: 3},
				"Action verb strength":  {WithContent: 4, WithoutContent: 2},
				"Value clarity":         {WithContent: 3, WithoutContent: 2},
				"Friction words":        {WithContent: 4, WithoutContent: 4},
				"Button size":           {WithContent: 5, WithoutContent: 3},
				"Button shape":          {WithContent: 5, WithoutContent: 4},
				"Hover states":          {WithContent: 4, WithoutContent: 3},
				"Steps to convert":      {WithContent: 3, WithoutContent: 2},
				"Distraction removal":   {WithContent: 4, WithoutContent: 3},
				"Exit points":           {WithContent: 4, WithoutContent: 3},
			},
			"seo": {
				"Title tag":          {WithContent: 4, WithoutContent: 1},
				"Meta description":   {WithContent: 4, WithoutContent: 1},
				"Canonical tag":      {WithContent: 5, WithoutContent: 2},
				"H1 heading":         {WithContent: 4, WithoutContent: 1},
				"Heading hierarchy":  {WithContent: 4, WithoutContent: 2},
				"Keyword usage":      {WithContent: 3, WithoutContent: 2},
				"Page speed signals": {WithContent: 3, WithoutContent: 2},
				"Image alt text":     {WithContent: 4, WithoutContent: 1},
				"Structured data":    {WithContent: 5, WithoutContent: 2},
				"Internal linking":   {WithContent: 4, WithoutContent: 2},
				"Anchor text":        {WithContent: 4, WithoutContent: 2},
				"Outbound links":     {WithContent: 5, WithoutContent: 3},
			},
		},
		OptimizationDefaults: map[string]ContentVariants{
			"copywriting": {WithContent: 4, WithoutContent: 2},
			"uxui":        {WithContent: 4, WithoutContent: 2},
			"mobile":      {WithContent: 4, WithoutContent: 2},
			"cta":         {WithContent: 4, WithoutContent: 2},
			"seo":         {WithContent: 4, WithoutContent: 1},
		},
		IndustryOptimizationAdj: map[string]int{
			"ecommerce": 1,
			"saas":      0,
			"services":  0,
			"local":     -1,
			"other":     0,
		},

		Impact: map[string]map[string]int{
			"copywriting": {
				"Main headline":      4,
				"Subheadline":        3,
				"Value proposition":  4,
				"Supporting copy":    2,
				"Benefit statements": 3,
				"Social proof copy":  3,
				"Urgency triggers":   2,
				"Paragraph structure": 2,
				"Scannability":       3,
				"Tone of voice":      2,
				"Jargon level":       2,
				"Primary CTA text":   4,
				"Secondary CTA text": 2,
				"Microcopy":          2,
			},
			"uxui": {
				"Above the fold layout": 4,
				"Content grouping":      3,
				"Whitespace balance":    2,
				"Menu structure":        3,
				"Scroll depth cues":     2,
				"Internal links":        2,
				"Testimonials display":  3,
				"Trust badges":          3,
				"Brand consistency":     2,
				"Form length":           4,
				"Field labels":          2,
				"Error feedback":        3,
			},
			"mobile": {
				"Viewport configuration": 4,
				"Tap target size":        3,
				"Font scaling":           2,
				"Image optimization":     3,
				"Script weight":          3,
				"Render blocking":        3,
				"Hamburger menu":         2,
				"Sticky CTA":             3,
				"Thumb reachability":     2,
				"Content prioritization": 3,
				"Form usability":         4,
				"Popup behavior":         3,
			},
			"cta": {
				"Primary CTA placement": 4,
				"CTA contrast":          3,
				"CTA repetition":        2,
				"Action verb strength":  4,
				"Value clarity":         4,
				"Friction words":        3,
				"Button size":           2,
				"Button shape":          1,
				"Hover states":          1,
				"Steps to convert":      4,
				"Distraction removal":   3,
				"Exit points":           2,
			},
			"seo": {
				"Title tag":          4,
				"Meta description":   3,
				"Canonical tag":      2,
				"H1 heading":         4,
				"Heading hierarchy":  3,
				"Keyword usage":      4,
				"Page speed signals": 3,
				"Image alt text":     2,
				"Structured data":    2,
				"Internal linking":   3,
				"Anchor text":        2,
				"Outbound links":     1,
			},
		},
		ImpactDefault: 2,
		IndustryImpactAdj: map[string]int{
			"ecommerce": 1,
			"saas":      0,
			"services":  0,
			"local":     -1,
			"other":     0,
		},

		TimingMinutes: map[string]int{
			"Main headline":          20,
			"Subheadline":            20,
			"Value proposition":      60,
			"Supporting copy":        45,
			"Benefit statements":     40,
			"Social proof copy":      60,
			"Urgency triggers":       25,
			"Paragraph structure":    45,
			"Scannability":           40,
			"Tone of voice":          90,
			"Jargon level":           30,
			"Primary CTA text":       15,
			"Secondary CTA text":     15,
			"Microcopy":              30,
			"Above the fold layout":  120,
			"Content grouping":       90,
			"Whitespace balance":     60,
			"Menu structure":         90,
			"Scroll depth cues":      45,
			"Internal links":         30,
			"Testimonials display":   60,
			"Trust badges":           25,
			"Brand consistency":      120,
			"Form length":            45,
			"Field labels":           25,
			"Error feedback":         60,
			"Viewport configuration": 15,
			"Tap target size":        40,
			"Font scaling":           30,
			"Image optimization":     60,
			"Script weight":          120,
			"Render blocking":        90,
			"Hamburger menu":         60,
			"Sticky CTA":             40,
			"Thumb reachability":     60,
			"Content prioritization": 90,
			"Form usability":         60,
			"Popup behavior":         30,
			"Primary CTA placement":  30,
			"CTA contrast":           20,
			"CTA repetition":         25,
			"Action verb strength":   15,
			"Value clarity":          30,
			"Friction words":         20,
			"Button size":            20,
			"Button shape":           20,
			"Hover states":           25,
			"Steps to convert":       120,
			"Distraction removal":    60,
			"Exit points":            45,
			"Title tag":              15,
			"Meta description":       15,
			"Canonical tag":          20,
			"H1 heading":             15,
			"Heading hierarchy":      40,
			"Keyword usage":          90,
			"Page speed signals":     120,
			"Image alt text":         40,
			"Structured data":        60,
			"Internal linking":       45,
			"Anchor text":            30,
			"Outbound links":         20,
		},
		TimingDefaultMinutes: 45,
		IndustryTimingMultiplier: map[string]float64{
			"ecommerce": 1.2,
			"saas":      1.1,
			"services":  1.0,
			"local":     0.9,
			"other":     1.0,
		},

		Benchmarks: map[string]map[string]BenchmarkEntry{
			"copywriting": {
				"ecommerce": {Base: 62, Factors: map[string]int{"sales": 8, "leadGeneration": 5, "signups": 4}},
				"saas":      {Base: 64, Factors: map[string]int{"signups": 8, "leadGeneration": 6, "engagement": 3}},
				"services":  {Base: 60, Factors: map[string]int{"leadGeneration": 8, "bookings": 6}},
				"local":     {Base: 56, Factors: map[string]int{"bookings": 8, "leadGeneration": 6}},
				"other":     {Base: 60, Factors: map[string]int{"leadGeneration": 5}},
			},
			"uxui": {
				"ecommerce": {Base: 63, Factors: map[string]int{"sales": 7, "engagement": 4}},
				"saas":      {Base: 65, Factors: map[string]int{"signups": 7, "engagement": 4}},
				"services":  {Base: 59, Factors: map[string]int{"leadGeneration": 7, "bookings": 5}},
				"local":     {Base: 55, Factors: map[string]int{"bookings": 7, "leadGeneration": 5}},
				"other":     {Base: 60, Factors: map[string]int{"engagement": 4}},
			},
			"mobile": {
				"ecommerce": {Base: 61, Factors: map[string]int{"sales": 8, "engagement": 5}},
				"saas":      {Base: 60, Factors: map[string]int{"signups": 7}},
				"services":  {Base: 57, Factors: map[string]int{"leadGeneration": 7, "bookings": 6}},
				"local":     {Base: 58, Factors: map[string]int{"bookings": 8, "leadGeneration": 5}},
				"other":     {Base: 60, Factors: map[string]int{"engagement": 5}},
			},
			"cta": {
				"ecommerce": {Base: 64, Factors: map[string]int{"sales": 9, "signups": 5}},
				"saas":      {Base: 63, Factors: map[string]int{"signups": 9, "leadGeneration": 6}},
				"services":  {Base: 60, Factors: map[string]int{"leadGeneration": 9, "bookings": 7}},
				"local":     {Base: 57, Factors: map[string]int{"bookings": 9, "leadGeneration": 6}},
				"other":     {Base: 60, Factors: map[string]int{"leadGeneration": 6}},
			},
			"seo": {
				"ecommerce": {Base: 60, Factors: map[string]int{"sales": 6, "leadGeneration": 6}},
				"saas":      {Base: 62, Factors: map[string]int{"signups": 6, "leadGeneration": 6}},
				"services":  {Base: 58, Factors: map[string]int{"leadGeneration": 8}},
				"local":     {Base: 57, Factors: map[string]int{"leadGeneration": 7, "bookings": 6}},
				"other":     {Base: 60, Factors: map[string]int{"leadGeneration": 5}},
			},
		},
		BenchmarkDefault: BenchmarkEntry{Base: 60, Factors: map[string]int{}},
	}
}

package content

// Blog registry. Add entries here when publishing new articles.
var posts = []Post{
	{
		Slug:     "how-much-does-a-new-roof-cost",
		Title:    "How Much Does a New Roof Cost in 2026?",
		Excerpt:  "A complete breakdown of roof replacement pricing by material, size, and region.",
		Date:     "February 12, 2026",
		ReadTime: "9 min read",
		Category: "Pricing",
		Body: `
<p>A new roof is one of the largest home maintenance purchases most owners ever make,
and quotes for the same job can vary by thousands of dollars. The spread usually comes
down to three things: material, roof complexity, and local labor rates.</p>
<h2>Typical price ranges</h2>
<p>For a standard 2,000 square foot home, asphalt shingles run $8,000 to $15,000
installed. Metal roofing lands between $15,000 and $30,000, and tile or slate can
exceed $40,000. Steep pitches, multiple valleys, and skylights all push labor hours up.</p>
<h2>What drives the quote</h2>
<p>Tear-off of the existing roof, decking repairs discovered mid-job, and disposal fees
are the most common line items homeowners do not anticipate. Ask every contractor to
break these out separately so quotes are comparable.</p>
<h2>Getting an accurate number</h2>
<p>Collect at least three written estimates that each include an on-roof inspection.
A quote produced from the driveway is a guess, not an estimate.</p>`,
	},
	{
		Slug:     "roof-replacement-cost",
		Title:    "Roof Replacement Cost: Repair or Replace?",
		Excerpt:  "When a repair buys you years and when it just delays the inevitable.",
		Date:     "January 28, 2026",
		ReadTime: "7 min read",
		Category: "Pricing",
		Body: `
<p>The repair-or-replace decision comes down to the age of the roof and the extent of
the damage. A 10-year-old roof with a single leak is a repair. A 22-year-old roof with
curling shingles across the south face is a replacement, no matter how small today's
leak looks.</p>
<h2>The 30 percent rule</h2>
<p>If a repair would touch more than roughly a third of the roof surface, replacement
is usually cheaper over a five-year horizon once you account for repeat visits and
escalating material prices.</p>
<h2>Partial re-roofs</h2>
<p>Replacing one slope can make sense after localized storm damage, but mixing new and
aged shingles shortens the warranty on the new section. Get the warranty terms in
writing before choosing this path.</p>`,
	},
	{
		Slug:     "roofing-contractors-near-me",
		Title:    "Finding Roofing Contractors Near You: A Checklist",
		Excerpt:  "Licenses, insurance, references — what to verify before anyone climbs a ladder.",
		Date:     "January 15, 2026",
		ReadTime: "6 min read",
		Category: "Hiring",
		Body: `
<p>Roofing attracts more storm-chasing fly-by-night operators than almost any other
trade. A few minutes of verification filters out most of them.</p>
<h2>Before you call</h2>
<p>Confirm the company lists a physical address and a local phone number. Check the
state license board for an active contractor license and look up their insurance
certificate — both liability and workers' compensation.</p>
<h2>During the estimate</h2>
<p>A trustworthy contractor measures the roof, inspects the attic for moisture, and
photographs problem areas. Be wary of anyone who quotes a total price without going
on the roof, or who demands a large deposit before materials arrive.</p>
<h2>Before you sign</h2>
<p>Ask for three references from jobs completed more than a year ago. Recent work
always looks good; the year-old jobs show whether it lasts.</p>`,
	},
	{
		Slug:     "example-post",
		Title:    "Roofing Contractor Cost: What You'll Actually Pay",
		Excerpt:  "A deep dive into pricing across different markets.",
		Date:     "January 1, 2026",
		ReadTime: "8 min read",
		Category: "Pricing",
		Body: `
<p>National averages hide enormous regional variation in roofing prices. The same
architectural shingle install that costs $9,500 in Texas routinely bids at $14,000
in coastal markets with stricter wind codes.</p>
<h2>Market factors</h2>
<p>Permit fees, code-mandated underlayment upgrades, and seasonal demand spikes after
hail events all move prices. In hail-belt cities expect quotes to climb 10 to 20
percent in the months after a major storm.</p>
<h2>How to use this site</h2>
<p>Every listing shows the services each contractor offers with an estimated price
range. Use the ranges to anchor expectations, then request a free estimate to get a
number specific to your roof.</p>`,
	},
}

// Guides index. Add guide entries here as you create them.
var guides = []Guide{
	{
		Slug:    "how-to-choose-roofing-contractor",
		Title:   "How to Choose a Roofing Contractor",
		Excerpt: "Everything you need to know before hiring a pro.",
		Body: `
<p>Choosing a roofing contractor is mostly about eliminating risk. The work is
expensive, mistakes stay hidden for years, and the industry has a long tail of
under-insured operators.</p>
<h2>Verify the basics</h2>
<p>License, liability insurance, workers' compensation, and a physical address. Any
contractor who hesitates on these four items should be dropped immediately.</p>
<h2>Compare like for like</h2>
<p>Ask each bidder to quote the same shingle line and warranty tier. A quote that is
20 percent cheaper because it swaps in a builder-grade shingle is not a better deal.</p>
<h2>Read the contract</h2>
<p>Payment schedule tied to milestones, a start window, debris removal, and gutter
protection should all be in writing before any deposit changes hands.</p>`,
	},
	{
		Slug:    "signs-you-need-new-roof",
		Title:   "Signs You Need a New Roof",
		Excerpt: "How to spot trouble before the water reaches your ceiling.",
		Body: `
<p>Most roofs announce their failure months before the first interior stain appears.
Knowing the signs turns an emergency replacement into a planned one.</p>
<h2>From the ground</h2>
<p>Curling or cupping shingle edges, bald patches where granules have washed away,
and dark streaks along slopes all signal an aging roof. Granules collecting in
gutters are shingles literally wearing out.</p>
<h2>From the attic</h2>
<p>Daylight through the boards, damp insulation, and rusted nail tips are earlier and
more reliable indicators than anything visible outside.</p>
<h2>Age alone</h2>
<p>Asphalt roofs older than 20 years should be inspected annually even with no visible
symptoms. A $200 inspection is cheap insurance on a five-figure asset.</p>`,
	},
}

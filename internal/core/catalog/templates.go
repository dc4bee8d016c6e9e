package catalog

import "github.com/custodia-labs/whatif-cli/internal/core/domain"

var generalTemplates = map[domain.CategoryID]Templates{
	domain.CategoryMentalHealth: {
		Positive: []string{
			"This choice likely reduced your stress levels over time.",
			"This decision may have improved your overall mental well-being.",
			"You probably experienced greater peace of mind with this choice.",
			"This path likely gave you more emotional stability.",
			"This decision may have helped you feel more in control of your life.",
		},
		Negative: []string{
			"This choice might have introduced new sources of anxiety.",
			"This decision could have increased your stress levels.",
			"You might have experienced more emotional turbulence with this choice.",
			"This path possibly led to more worrying and overthinking.",
			"This decision may have challenged your mental resilience.",
		},
	},
	domain.CategoryRelationships: {
		Positive: []string{
			"This choice likely strengthened your bonds with loved ones.",
			"This decision probably helped you form meaningful new connections.",
			"You may have developed deeper trust with important people in your life.",
			"This path possibly expanded your social circle in positive ways.",
			"This decision might have improved your existing relationships.",
		},
		Negative: []string{
			"This choice may have created distance in some key relationships.",
			"This decision possibly led to some social isolation.",
			"You might have missed opportunities to connect with certain people.",
			"This path could have caused tension in your existing relationships.",
			"This decision may have limited your exposure to new social connections.",
		},
	},
	domain.CategoryFinances: {
		Positive: []string{
			"This choice probably improved your financial stability.",
			"This decision likely led to better money management habits.",
			"You may have increased your earning potential with this path.",
			"This choice possibly opened up new financial opportunities.",
			"This decision might have protected you from financial setbacks.",
		},
		Negative: []string{
			"This choice might have introduced financial strain.",
			"This decision possibly required unexpected expenses.",
			"You may have faced more financial uncertainty with this path.",
			"This choice likely limited some financial opportunities.",
			"This decision could have reduced your financial flexibility.",
		},
	},
	domain.CategoryCareer: {
		Positive: []string{
			"This choice probably advanced your professional development.",
			"This decision likely opened new career opportunities.",
			"You may have gained valuable skills and experience on this path.",
			"This choice possibly enhanced your professional reputation.",
			"This decision might have aligned better with your long-term career goals.",
		},
		Negative: []string{
			"This choice might have limited some career advancement opportunities.",
			"This decision possibly delayed certain professional milestones.",
			"You may have missed chances to develop specific professional skills.",
			"This choice likely closed some doors in your career path.",
			"This decision could have positioned you in a less optimal industry.",
		},
	},
	domain.CategoryPersonalGrowth: {
		Positive: []string{
			"This choice probably challenged you to grow in meaningful ways.",
			"This decision likely expanded your perspective on life.",
			"You may have developed new strengths you didn't know you had.",
			"This path possibly pushed you beyond your comfort zone.",
			"This decision might have taught you valuable life lessons.",
		},
		Negative: []string{
			"This choice might have kept you in your comfort zone more often.",
			"This decision possibly limited your exposure to new experiences.",
			"You may have had fewer opportunities for personal reinvention.",
			"This path likely provided less challenge to your worldview.",
			"This decision could have reinforced limiting beliefs about yourself.",
		},
	},
	domain.CategorySelfImage: {
		Positive: []string{
			"This choice probably helped you see yourself in a more positive light.",
			"This decision likely reinforced your authentic identity.",
			"You may have developed more confidence through this path.",
			"This choice possibly helped you better align with your values.",
			"This decision might have improved how you perceive your capabilities.",
		},
		Negative: []string{
			"This choice might have challenged your sense of identity.",
			"This decision possibly created some dissonance with your self-image.",
			"You may have experienced moments of doubt about yourself on this path.",
			"This choice likely required compromising some aspects of yourself.",
			"This decision could have led to questioning your personal values.",
		},
	},
}

var pinkHairActual = map[domain.CategoryID][]string{
	domain.CategoryMentalHealth: {
		"Expressing yourself through your pink hair likely gave you a psychological boost.",
		"The bold change may have been refreshing for your mental state.",
	},
	domain.CategoryRelationships: {
		"Your pink hair probably attracted a more artistic and unconventional social circle.",
		"Some traditional relationships might have been challenged by your new look.",
	},
	domain.CategoryFinances: {
		"Maintaining pink hair likely required ongoing expenses for touch-ups and special products.",
		"You probably invested in new styling products specifically for colored hair.",
	},
	domain.CategoryCareer: {
		"Your pink hair may have influenced how colleagues or clients perceived your professionalism.",
		"In creative fields, your bold look might have been seen as an asset.",
	},
	domain.CategoryPersonalGrowth: {
		"Taking this step outside convention likely built your courage for other life changes.",
		"You discovered how it feels to visibly stand out from the crowd.",
	},
	domain.CategorySelfImage: {
		"Your pink hair became part of how you express your authentic self.",
		"You likely discovered a bolder, more adventurous side of your personality.",
	},
}

var pinkHairAlternate = map[domain.CategoryID][]string{
	domain.CategoryMentalHealth: {
		"Maintaining your natural hair would have meant less worry about damage or maintenance.",
		"You might have avoided potential stress about how others perceived your unconventional look.",
	},
	domain.CategoryRelationships: {
		"Your social circle might have remained more conventional without the statement hair.",
		"You might have blended in more easily in traditional social settings.",
	},
	domain.CategoryFinances: {
		"You would have saved money on hair dye, touch-ups, and special hair products.",
		"Your regular hair care routine would have been less expensive.",
	},
	domain.CategoryCareer: {
		"In conservative work environments, natural hair might have been more professionally neutral.",
		"You might have avoided potential workplace judgment about unconventional appearance.",
	},
	domain.CategoryPersonalGrowth: {
		"You might have found other, less visible ways to express your individuality.",
		"You might have stayed more within social conventions, for better or worse.",
	},
	domain.CategorySelfImage: {
		"Your self-expression would have taken different forms without the visual statement of pink hair.",
		"You might have focused on other aspects of your appearance or personality to showcase your identity.",
	},
}

package wordcount

// Story is the fixed text ranked by the word-count endpoints.
const Story = "the quick brown fox jumped over the lazy fence and then noticed another quick black fox " +
	"that was much quicker than the original fox but the original fox was able to jump higher over the fence"

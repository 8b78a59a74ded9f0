// Package nutrition looks up foods in USDA FoodData Central and normalizes
// their nutrient lists into a fixed [Summary].
//
// [Extract] is a pure mapping from nutrient records to a summary and never
// fails. [Client] performs the upstream search and reports an empty result as
// a [NoResultsError]:
//
//	c := nutrition.NewClient(apiKey)
//	summary, err := c.Lookup(ctx, "apple")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(summary.Text())
package nutrition

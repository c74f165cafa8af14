package redis

import "fmt"

const ns = "atelier:v1"

func KeyCourseList() string {
	return ns + ":courses:list"
}

func KeyCourse(courseID int64) string {
	return fmt.Sprintf("%s:course:%d", ns, courseID)
}

func KeyCourseTypes() string {
	return ns + ":course-types:list"
}

func KeyProductList() string {
	return ns + ":products:list"
}

func KeyProduct(productID int64) string {
	return fmt.Sprintf("%s:product:%d", ns, productID)
}

func KeyGalleryList() string {
	return ns + ":gallery:list"
}

func KeyRateLimit(scope, id string) string {
	return fmt.Sprintf("%s:rl:%s:%s", ns, scope, id)
}

func ChannelCoursesChanged() string {
	return ns + ":courses:changed"
}
